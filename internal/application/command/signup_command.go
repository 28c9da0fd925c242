package command

type SignupCommand struct {
	Email    string
	Password string
	FullName string
}

type SignupCommandResult struct {
	Message string
}

package command

type LoginCommand struct {
	Email    string
	Password string
}

type LoginCommandResult struct {
	Token string
}

package command

type ForgotPasswordCommand struct {
	Email string
}

type ForgotPasswordCommandResult struct {
	Message string
}

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordCommandResult struct {
	Message string
}

package interfaces

import (
	"context"

	"github.com/google/uuid"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/domain/entities"
)

type AuthService interface {
	Signup(ctx context.Context, cmd *command.SignupCommand) (*command.SignupCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginCommand) (*command.LoginCommandResult, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, cmd *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error)
	ResetPassword(ctx context.Context, cmd *command.ResetPasswordCommand) (*command.ResetPasswordCommandResult, error)
}

type OAuthService interface {
	Begin(provider string) (*command.OAuthBeginCommandResult, error)
	Callback(ctx context.Context, cmd *command.OAuthCallbackCommand) (*command.OAuthCallbackCommandResult, error)
}

type TodoService interface {
	Create(ctx context.Context, userId uuid.UUID, cmd *command.CreateTodoCommand) (*entities.Todo, error)
	List(ctx context.Context, userId uuid.UUID) ([]*entities.Todo, error)
	Get(ctx context.Context, userId, id uuid.UUID) (*entities.Todo, error)
	Update(ctx context.Context, userId, id uuid.UUID, cmd *command.UpdateTodoCommand) (*entities.Todo, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

package services

import (
	"context"

	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/application/interfaces"
	"todo-auth-service/internal/domain/entities"
	"todo-auth-service/internal/domain/repositories"
	"todo-auth-service/internal/infrastructure"
)

const forgotPasswordMessage = "If the email exists, a reset link will be sent"

type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
	mailer     infrastructure.Mailer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	mailer infrastructure.Mailer,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		mailer:     mailer,
	}
}

func (s *AuthService) Signup(ctx context.Context, cmd *command.SignupCommand) (*command.SignupCommandResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already exists")
	}

	user := entities.NewLocalUser(cmd.Email, cmd.Password, cmd.FullName)
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(ctx, created.Email, *created.VerificationToken); err != nil {
		return nil, err
	}

	return &command.SignupCommandResult{
		Message: "User created successfully. Please verify your email.",
	}, nil
}

func (s *AuthService) Login(ctx context.Context, cmd *command.LoginCommand) (*command.LoginCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	// Absent user, OAuth-only account and wrong password all collapse into
	// the same message so none of them can be told apart.
	if user == nil {
		return nil, apperr.Auth("Invalid credentials")
	}
	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, apperr.Auth("Invalid credentials")
	}
	if !user.IsVerified {
		return nil, apperr.Auth("Please verify your email first")
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginCommandResult{Token: token}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.Validation("Invalid verification token")
	}

	user.MarkAsVerified()
	_, err = s.userRepo.Update(ctx, user)
	return err
}

func (s *AuthService) ForgotPassword(ctx context.Context, cmd *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error) {
	result := &command.ForgotPasswordCommandResult{Message: forgotPasswordMessage}

	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	// Unknown emails and OAuth-only accounts get the same answer as real
	// ones; anything else is an enumeration signal.
	if user == nil || user.Password == nil {
		return result, nil
	}

	token := user.IssueResetToken()
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, cmd *command.ResetPasswordCommand) (*command.ResetPasswordCommandResult, error) {
	user, err := s.userRepo.FindByResetToken(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Validation("Invalid reset token")
	}

	if err := user.SetPassword(cmd.NewPassword); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &command.ResetPasswordCommandResult{Message: "Password reset successfully"}, nil
}

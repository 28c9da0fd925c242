package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/application/interfaces"
	"todo-auth-service/internal/domain/entities"
	"todo-auth-service/internal/domain/repositories"
	"todo-auth-service/internal/infrastructure"
)

type OAuthService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
	providers  map[string]infrastructure.OAuthProvider
}

func NewOAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	providers map[string]infrastructure.OAuthProvider,
) interfaces.OAuthService {
	return &OAuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		providers:  providers,
	}
}

func (s *OAuthService) Begin(provider string) (*command.OAuthBeginCommandResult, error) {
	p, err := s.provider(provider)
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	return &command.OAuthBeginCommandResult{
		AuthURL:  p.AuthCodeURL(state, verifier),
		State:    state,
		Verifier: verifier,
	}, nil
}

func (s *OAuthService) Callback(ctx context.Context, cmd *command.OAuthCallbackCommand) (*command.OAuthCallbackCommandResult, error) {
	p, err := s.provider(cmd.Provider)
	if err != nil {
		return nil, err
	}

	token, err := p.Exchange(ctx, cmd.Code, cmd.Verifier)
	if err != nil {
		log.Printf("oauth code exchange failed: %v", err)
		return nil, apperr.Auth("OAuth authentication failed")
	}

	claims, err := p.FetchClaims(ctx, token)
	if err != nil {
		log.Printf("oauth userinfo fetch failed: %v", err)
		return nil, apperr.Auth("OAuth authentication failed")
	}

	user, outcome, err := s.resolve(ctx, cmd.Provider, claims, token)
	if err != nil {
		return nil, err
	}

	sessionToken, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &command.OAuthCallbackCommandResult{Token: sessionToken, Outcome: outcome}, nil
}

// resolve maps provider-asserted claims onto a user record, evaluated in
// strict order: an already linked account, then a local account with the
// same email, then a brand new account. Re-invocation with the same
// (provider, subject) pair is idempotent apart from token-refresh fields.
func (s *OAuthService) resolve(
	ctx context.Context,
	provider string,
	claims *infrastructure.OAuthClaims,
	token *oauth2.Token,
) (*entities.User, command.OAuthOutcome, error) {
	linked, err := s.userRepo.FindByOAuth(ctx, provider, claims.Subject)
	if err != nil {
		return nil, "", apperr.Auth("OAuth authentication failed")
	}
	if linked != nil {
		linked.RefreshOAuthTokens(token.AccessToken, token.RefreshToken, token.Expiry)
		updated, err := s.userRepo.Update(ctx, linked)
		if err != nil {
			return nil, "", apperr.Auth("OAuth authentication failed")
		}
		return updated, command.OutcomeLinked, nil
	}

	byEmail, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, "", apperr.Auth("OAuth authentication failed")
	}
	if byEmail != nil {
		byEmail.LinkOAuth(provider, claims.Subject)
		byEmail.RefreshOAuthTokens(token.AccessToken, token.RefreshToken, token.Expiry)
		updated, err := s.userRepo.Update(ctx, byEmail)
		if err != nil {
			return nil, "", apperr.Auth("OAuth authentication failed")
		}
		return updated, command.OutcomeLinkedByEmail, nil
	}

	user := entities.NewOAuthUser(claims.Email, claims.Name, provider, claims.Subject)
	user.RefreshOAuthTokens(token.AccessToken, token.RefreshToken, token.Expiry)
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", apperr.Auth("OAuth authentication failed")
	}
	return created, command.OutcomeCreated, nil
}

func (s *OAuthService) provider(name string) (infrastructure.OAuthProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, apperr.UnsupportedProvider("Unsupported OAuth provider: " + name)
	}
	return p, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/domain/repositories"
	"todo-auth-service/internal/infrastructure"
	"todo-auth-service/internal/infrastructure/db/postgres"
)

// fakeProvider skips the real handshake and hands back canned claims.
type fakeProvider struct {
	claims *infrastructure.OAuthClaims
	token  *oauth2.Token
}

func (f *fakeProvider) AuthCodeURL(state, verifier string) string {
	return "https://provider.example/consent?state=" + state
}

func (f *fakeProvider) Exchange(_ context.Context, code, verifier string) (*oauth2.Token, error) {
	return f.token, nil
}

func (f *fakeProvider) FetchClaims(_ context.Context, _ *oauth2.Token) (*infrastructure.OAuthClaims, error) {
	return f.claims, nil
}

func newOAuthFixture(t *testing.T, provider *fakeProvider) (*OAuthService, repositories.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	svc := NewOAuthService(userRepo, infrastructure.NewJWTService("test-secret"), map[string]infrastructure.OAuthProvider{
		"google": provider,
	})
	return svc.(*OAuthService), userRepo
}

func googleProvider(subject, email, name string) *fakeProvider {
	return &fakeProvider{
		claims: &infrastructure.OAuthClaims{Subject: subject, Email: email, Name: name},
		token: &oauth2.Token{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			Expiry:       time.Now().Add(time.Hour),
		},
	}
}

func callbackCmd() *command.OAuthCallbackCommand {
	return &command.OAuthCallbackCommand{Provider: "google", Code: "code", Verifier: "verifier"}
}

func TestOAuthUnsupportedProvider(t *testing.T) {
	svc, _ := newOAuthFixture(t, googleProvider("sub-1", "a@b.com", "A"))

	_, err := svc.Begin("facebook")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnsupportedProvider, apperr.KindOf(err))

	_, err = svc.Callback(context.Background(), &command.OAuthCallbackCommand{Provider: "facebook"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnsupportedProvider, apperr.KindOf(err))
}

func TestOAuthBeginProducesStateAndVerifier(t *testing.T) {
	svc, _ := newOAuthFixture(t, googleProvider("sub-1", "a@b.com", "A"))

	result, err := svc.Begin("google")
	require.NoError(t, err)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Verifier)
	assert.Contains(t, result.AuthURL, result.State)
}

func TestOAuthCallbackCreatesNewUser(t *testing.T) {
	svc, userRepo := newOAuthFixture(t, googleProvider("sub-1", "new@b.com", "New User"))
	ctx := context.Background()

	result, err := svc.Callback(ctx, callbackCmd())
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeCreated, result.Outcome)
	assert.NotEmpty(t, result.Token)

	user, err := userRepo.FindByOAuth(ctx, "google", "sub-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.Password)
	assert.Equal(t, "new@b.com", user.Email)
	require.NotNil(t, user.OAuthAccessToken)
	assert.Equal(t, "access-1", *user.OAuthAccessToken)
}

func TestOAuthCallbackLinksExistingLocalAccountByEmail(t *testing.T) {
	svc, userRepo := newOAuthFixture(t, googleProvider("sub-1", "a@b.com", "A"))
	ctx := context.Background()

	authSvc := NewAuthService(userRepo, infrastructure.NewJWTService("test-secret"), &fakeMailer{})
	_, err := authSvc.Signup(ctx, signupCmd())
	require.NoError(t, err)

	result, err := svc.Callback(ctx, callbackCmd())
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeLinkedByEmail, result.Outcome)

	// Linked in place, no duplicate row, local verification satisfied.
	user, err := userRepo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsVerified)
	require.NotNil(t, user.OAuthId)
	assert.Equal(t, "sub-1", *user.OAuthId)
	require.NotNil(t, user.Password)

	byOAuth, err := userRepo.FindByOAuth(ctx, "google", "sub-1")
	require.NoError(t, err)
	require.NotNil(t, byOAuth)
	assert.Equal(t, user.Id, byOAuth.Id)
}

func TestOAuthCallbackIsIdempotentForSameSubject(t *testing.T) {
	provider := googleProvider("sub-1", "a@b.com", "A")
	svc, userRepo := newOAuthFixture(t, provider)
	ctx := context.Background()

	first, err := svc.Callback(ctx, callbackCmd())
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeCreated, first.Outcome)

	provider.token = &oauth2.Token{
		AccessToken:  "access-2",
		RefreshToken: "refresh-2",
		Expiry:       time.Now().Add(2 * time.Hour),
	}

	second, err := svc.Callback(ctx, callbackCmd())
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeLinked, second.Outcome)

	user, err := userRepo.FindByOAuth(ctx, "google", "sub-1")
	require.NoError(t, err)
	require.NotNil(t, user.OAuthAccessToken)
	assert.Equal(t, "access-2", *user.OAuthAccessToken)

	// Still exactly one row for this email.
	byEmail, err := userRepo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.Id, byEmail.Id)
}

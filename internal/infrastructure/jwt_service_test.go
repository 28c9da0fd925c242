package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-auth-service/internal/domain/entities"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := entities.NewLocalUser("a@b.com", "Abcdef12", "A")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id.String(), claims.UserId)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := entities.NewLocalUser("a@b.com", "Abcdef12", "A")

	token, err := NewJWTService("secret-one").GenerateToken(user)
	require.NoError(t, err)

	_, err = NewJWTService("secret-two").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	signed, err := svc.SignState("some-state-value", time.Minute)
	require.NoError(t, err)

	value, err := svc.VerifyState(signed)
	require.NoError(t, err)
	assert.Equal(t, "some-state-value", value)
}

func TestVerifyStateExpired(t *testing.T) {
	svc := NewJWTService("test-secret")

	signed, err := svc.SignState("some-state-value", -time.Second)
	require.NoError(t, err)

	_, err = svc.VerifyState(signed)
	assert.Error(t, err)
}

package infrastructure

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"todo-auth-service/internal/domain/entities"
)

const sessionTokenTTL = 24 * time.Hour

// SessionClaims is the payload of the bearer token handed to clients after
// a successful login or OAuth callback.
type SessionClaims struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// StateClaims wraps an opaque value (OAuth state or PKCE verifier) in a
// short-lived signed token stored client-side as a cookie.
type StateClaims struct {
	Value string `json:"value"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (j *JWTService) GenerateToken(user *entities.User) (string, error) {
	claims := SessionClaims{
		UserId: user.Id.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWTService) ParseToken(tokenString string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, j.keyFunc)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// SignState signs value into a token that expires after ttl.
func (j *JWTService) SignState(value string, ttl time.Duration) (string, error) {
	claims := StateClaims{
		Value: value,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// VerifyState returns the value carried by a state token, or an error when
// the token is forged or expired.
func (j *JWTService) VerifyState(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &StateClaims{}, j.keyFunc)
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*StateClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid state token")
	}
	return claims.Value, nil
}

// keyFunc enforces HMAC signing to avoid algorithm confusion.
func (j *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return j.secret, nil
}

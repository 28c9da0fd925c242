package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrNoLocalPassword = errors.New("user has no local password")

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	Email      string
	FullName   string
	Password   *string
	IsVerified bool

	VerificationToken  *string
	ResetPasswordToken *string

	OAuthProvider       *string
	OAuthId             *string
	OAuthAccessToken    *string
	OAuthRefreshToken   *string
	OAuthTokenExpiresAt *time.Time
}

// NewLocalUser creates an unverified user with a plaintext password that
// still needs HashPassword, and a fresh single-use verification token.
func NewLocalUser(email, password, fullName string) *User {
	now := time.Now()
	token := uuid.NewString()
	return &User{
		Id:                uuid.New(),
		CreatedAt:         now,
		UpdatedAt:         now,
		Email:             email,
		FullName:          fullName,
		Password:          &password,
		IsVerified:        false,
		VerificationToken: &token,
	}
}

// NewOAuthUser creates a user from provider-asserted claims. The provider
// already verified the email, so the account starts verified and has no
// local password.
func NewOAuthUser(email, fullName, provider, subject string) *User {
	now := time.Now()
	return &User{
		Id:            uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
		Email:         email,
		FullName:      fullName,
		IsVerified:    true,
		OAuthProvider: &provider,
		OAuthId:       &subject,
	}
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == nil && u.OAuthProvider == nil {
		return errors.New("user must have a password or an oauth identity")
	}
	return nil
}

func (u *User) HashPassword() error {
	if u.Password == nil {
		return ErrNoLocalPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(*u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)
	u.Password = &h
	return nil
}

func (u *User) CheckPassword(password string) error {
	if u.Password == nil {
		return ErrNoLocalPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password))
}

// SetPassword replaces the stored hash with a hash of the new password and
// consumes the reset token.
func (u *User) SetPassword(password string) error {
	u.Password = &password
	if err := u.HashPassword(); err != nil {
		return err
	}
	u.ResetPasswordToken = nil
	u.UpdatedAt = time.Now()
	return nil
}

// MarkAsVerified consumes the verification token.
func (u *User) MarkAsVerified() {
	u.IsVerified = true
	u.VerificationToken = nil
	u.UpdatedAt = time.Now()
}

func (u *User) IssueResetToken() string {
	token := uuid.NewString()
	u.ResetPasswordToken = &token
	u.UpdatedAt = time.Now()
	return token
}

// LinkOAuth attaches a provider identity to an existing local account.
// A provider-asserted email satisfies local verification.
func (u *User) LinkOAuth(provider, subject string) {
	u.OAuthProvider = &provider
	u.OAuthId = &subject
	u.IsVerified = true
	u.VerificationToken = nil
	u.UpdatedAt = time.Now()
}

func (u *User) RefreshOAuthTokens(accessToken, refreshToken string, expiresAt time.Time) {
	u.OAuthAccessToken = &accessToken
	if refreshToken != "" {
		u.OAuthRefreshToken = &refreshToken
	}
	if !expiresAt.IsZero() {
		u.OAuthTokenExpiresAt = &expiresAt
	}
	u.UpdatedAt = time.Now()
}

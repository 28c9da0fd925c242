package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email      string  `gorm:"uniqueIndex;not null"`
	FullName   string  `gorm:"column:full_name"`
	Password   *string `gorm:"column:password"`
	IsVerified bool    `gorm:"column:is_verified;default:false"`

	VerificationToken  *string `gorm:"column:verification_token"`
	ResetPasswordToken *string `gorm:"column:reset_password_token"`

	OAuthProvider       *string    `gorm:"column:oauth_provider;uniqueIndex:idx_users_oauth"`
	OAuthId             *string    `gorm:"column:oauth_id;uniqueIndex:idx_users_oauth"`
	OAuthAccessToken    *string    `gorm:"column:oauth_access_token;type:text"`
	OAuthRefreshToken   *string    `gorm:"column:oauth_refresh_token;type:text"`
	OAuthTokenExpiresAt *time.Time `gorm:"column:oauth_token_expires_at"`
}

func (UserModel) TableName() string {
	return "users"
}

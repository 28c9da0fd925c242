package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/domain/entities"
	"todo-auth-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// Concurrent signups race at the unique index; the loser is a
		// conflict, not an internal error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		return nil, err
	}
	return r.FindById(ctx, user.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByVerificationToken(ctx context.Context, token string) (*entities.User, error) {
	return r.findOne(ctx, "verification_token = ?", token)
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*entities.User, error) {
	return r.findOne(ctx, "reset_password_token = ?", token)
}

func (r *UserRepository) FindByOAuth(ctx context.Context, provider, subject string) (*entities.User, error) {
	return r.findOne(ctx, "oauth_provider = ? AND oauth_id = ?", provider, subject)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := userModelFromEntity(user)
	// Save with explicit column selection so cleared (nil) token columns are
	// written back as NULL instead of being skipped.
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", user.Id).
		Select("*").Omit("id", "created_at").
		Updates(model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		return nil, err
	}
	return r.FindById(ctx, user.Id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userModelToEntity(&model), nil
}

func userModelFromEntity(user *entities.User) *UserModel {
	return &UserModel{
		Id:                  user.Id,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
		Email:               user.Email,
		FullName:            user.FullName,
		Password:            user.Password,
		IsVerified:          user.IsVerified,
		VerificationToken:   user.VerificationToken,
		ResetPasswordToken:  user.ResetPasswordToken,
		OAuthProvider:       user.OAuthProvider,
		OAuthId:             user.OAuthId,
		OAuthAccessToken:    user.OAuthAccessToken,
		OAuthRefreshToken:   user.OAuthRefreshToken,
		OAuthTokenExpiresAt: user.OAuthTokenExpiresAt,
	}
}

func userModelToEntity(model *UserModel) *entities.User {
	return &entities.User{
		Id:                  model.Id,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		Email:               model.Email,
		FullName:            model.FullName,
		Password:            model.Password,
		IsVerified:          model.IsVerified,
		VerificationToken:   model.VerificationToken,
		ResetPasswordToken:  model.ResetPasswordToken,
		OAuthProvider:       model.OAuthProvider,
		OAuthId:             model.OAuthId,
		OAuthAccessToken:    model.OAuthAccessToken,
		OAuthRefreshToken:   model.OAuthRefreshToken,
		OAuthTokenExpiresAt: model.OAuthTokenExpiresAt,
	}
}

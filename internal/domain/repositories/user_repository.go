package repositories

import (
	"context"

	"github.com/google/uuid"
	"todo-auth-service/internal/domain/entities"
)

// UserRepository persists users. Lookup methods return (nil, nil) when no
// row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*entities.User, error)
	FindByResetToken(ctx context.Context, token string) (*entities.User, error)
	FindByOAuth(ctx context.Context, provider, subject string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
}

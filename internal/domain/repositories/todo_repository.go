package repositories

import (
	"context"

	"github.com/google/uuid"
	"todo-auth-service/internal/domain/entities"
)

// TodoRepository persists todos. Every method is scoped by the owning user
// id; a row owned by someone else behaves like a missing row.
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*entities.Todo, error)
	FindByIdForUser(ctx context.Context, id, userId uuid.UUID) (*entities.Todo, error)
	Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)
	DeleteForUser(ctx context.Context, id, userId uuid.UUID) (bool, error)
}

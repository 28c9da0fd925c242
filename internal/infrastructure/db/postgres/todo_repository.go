package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"todo-auth-service/internal/domain/entities"
	"todo-auth-service/internal/domain/repositories"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	model := todoModelFromEntity(todo)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return r.FindByIdForUser(ctx, todo.Id, todo.UserId)
}

func (r *TodoRepository) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entities.Todo, error) {
	var models []TodoModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	todos := make([]*entities.Todo, 0, len(models))
	for i := range models {
		todos = append(todos, todoModelToEntity(&models[i]))
	}
	return todos, nil
}

func (r *TodoRepository) FindByIdForUser(ctx context.Context, id, userId uuid.UUID) (*entities.Todo, error) {
	var model TodoModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return todoModelToEntity(&model), nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	model := todoModelFromEntity(todo)
	res := r.db.WithContext(ctx).Model(&TodoModel{}).
		Where("id = ? AND user_id = ?", todo.Id, todo.UserId).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(model)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByIdForUser(ctx, todo.Id, todo.UserId)
}

func (r *TodoRepository) DeleteForUser(ctx context.Context, id, userId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&TodoModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func todoModelFromEntity(todo *entities.Todo) *TodoModel {
	return &TodoModel{
		Id:          todo.Id,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		UserId:      todo.UserId,
	}
}

func todoModelToEntity(model *TodoModel) *entities.Todo {
	return &entities.Todo{
		Id:          model.Id,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Title:       model.Title,
		Description: model.Description,
		Completed:   model.Completed,
		UserId:      model.UserId,
	}
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/application/interfaces"
	"todo-auth-service/internal/domain/entities"
	"todo-auth-service/internal/domain/repositories"
	"todo-auth-service/internal/infrastructure/cache"
)

type TodoService struct {
	todoRepo repositories.TodoRepository
	cache    *cache.TodoCache
}

// NewTodoService creates a TodoService. A nil cache disables caching.
func NewTodoService(todoRepo repositories.TodoRepository, c *cache.TodoCache) interfaces.TodoService {
	return &TodoService{todoRepo: todoRepo, cache: c}
}

func (s *TodoService) Create(ctx context.Context, userId uuid.UUID, cmd *command.CreateTodoCommand) (*entities.Todo, error) {
	todo := entities.NewTodo(userId, cmd.Title, cmd.Description)
	if err := todo.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	created, err := s.todoRepo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userId)
	return created, nil
}

func (s *TodoService) List(ctx context.Context, userId uuid.UUID) ([]*entities.Todo, error) {
	if cached, err := s.cache.GetList(ctx, userId); err == nil && cached != nil {
		return cached, nil
	}

	todos, err := s.todoRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, userId, todos); err != nil {
		log.Printf("todo cache set failed for user %s: %v", userId, err)
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, userId, id uuid.UUID) (*entities.Todo, error) {
	todo, err := s.todoRepo.FindByIdForUser(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperr.NotFound("Todo not found")
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, userId, id uuid.UUID, cmd *command.UpdateTodoCommand) (*entities.Todo, error) {
	todo, err := s.todoRepo.FindByIdForUser(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	// A row owned by someone else looks exactly like a missing row.
	if todo == nil {
		return nil, apperr.NotFound("Todo not found")
	}

	if cmd.Title != nil {
		todo.Title = *cmd.Title
	}
	if cmd.Description != nil {
		todo.Description = cmd.Description
	}
	if cmd.Completed != nil {
		todo.Completed = *cmd.Completed
	}
	if err := todo.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	updated, err := s.todoRepo.Update(ctx, todo)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Todo not found")
	}
	s.invalidate(ctx, userId)
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	deleted, err := s.todoRepo.DeleteForUser(ctx, id, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Todo not found")
	}
	s.invalidate(ctx, userId)
	return nil
}

func (s *TodoService) invalidate(ctx context.Context, userId uuid.UUID) {
	if err := s.cache.Invalidate(ctx, userId); err != nil {
		log.Printf("todo cache invalidation failed for user %s: %v", userId, err)
	}
}

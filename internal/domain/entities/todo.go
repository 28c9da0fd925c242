package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description *string
	Completed   bool
	UserId      uuid.UUID
}

func NewTodo(userId uuid.UUID, title string, description *string) *Todo {
	now := time.Now()
	return &Todo{
		Id:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		UserId:      userId,
	}
}

func (t *Todo) Validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	if t.UserId == uuid.Nil {
		return errors.New("todo must have an owner")
	}
	return nil
}

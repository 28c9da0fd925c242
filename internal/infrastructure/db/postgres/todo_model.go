package postgres

import (
	"time"

	"github.com/google/uuid"
)

type TodoModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string    `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	Completed   bool      `gorm:"default:false"`
	UserId      uuid.UUID `gorm:"column:user_id;type:uuid;index;not null"`
}

func (TodoModel) TableName() string {
	return "todos"
}

package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Priority is the severity of a todo, stored as its string form.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the three allowed values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidationError reports client input that violates entity rules.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Todo is the single persisted resource of this service.
// Timestamps are managed in the store's write path, not by GORM.
type Todo struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Completed   bool           `gorm:"default:false;index" json:"completed"`
	Priority    Priority       `gorm:"type:varchar(16);default:'medium';index" json:"priority"`
	CreatedAt   time.Time      `gorm:"autoCreateTime:false;index" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime:false" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewTodo builds a Todo from raw input, trimming text fields and applying
// defaults. Pure construction: no I/O, the ID stays empty until insert.
func NewTodo(title, description, priority string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, &ValidationError{Message: "Title is required"}
	}

	p := PriorityMedium
	if priority != "" {
		p = Priority(priority)
		if !p.IsValid() {
			return Todo{}, &ValidationError{Message: "Priority must be one of: low, medium, high"}
		}
	}

	now := time.Now().UTC()
	return Todo{
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
		Priority:    p,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

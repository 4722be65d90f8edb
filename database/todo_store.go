package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/meprashantkumar/todo-api/model"
	"github.com/meprashantkumar/todo-api/query"
	"gorm.io/gorm"
)

// ErrTodoNotFound marks the absence of a record. For the gateway this is a
// normal outcome, never a storage fault.
var ErrTodoNotFound = errors.New("todo not found")

// priorityRank fixes the severity order used by priority sorting:
// high > medium > low.
const priorityRank = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END"

func orderClause(sort query.Sort) string {
	switch sort {
	case query.SortPriority:
		return priorityRank + " DESC, created_at DESC"
	case query.SortTitle:
		return "title ASC"
	default:
		return "created_at DESC"
	}
}

// FindTodos returns every todo matching the filter, in the requested order.
// Filter and order are applied entirely in SQL, never partially.
func (s *GORMStore) FindTodos(ctx context.Context, filter query.Filter, sort query.Sort) ([]model.Todo, error) {
	q := s.db.WithContext(ctx).Model(&model.Todo{})

	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	todos := []model.Todo{}
	if err := q.Order(orderClause(sort)).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// InsertTodo persists a new todo. The store owns identifier assignment and
// the pre-write timestamp refresh: UpdatedAt is set exactly once here.
func (s *GORMStore) InsertTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	todo.ID = uuid.NewString()
	todo.UpdatedAt = time.Now().UTC()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = todo.UpdatedAt
	}

	if err := s.db.WithContext(ctx).Create(&todo).Error; err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// DeleteTodoByID soft-deletes the todo with the given id and returns it.
// Already-deleted and never-existed ids both report ErrTodoNotFound.
func (s *GORMStore) DeleteTodoByID(ctx context.Context, id string) (model.Todo, error) {
	var todo model.Todo
	if err := s.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}

	if err := s.db.WithContext(ctx).Delete(&todo).Error; err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

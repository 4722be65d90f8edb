package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meprashantkumar/todo-api/model"
	"github.com/meprashantkumar/todo-api/query"
)

// MemoryStore is an in-memory Storage implementation used by tests. It
// mirrors the GORM store's contract: identifier assignment and the
// timestamp refresh happen in the write path, and filter and order are
// always fully applied.
type MemoryStore struct {
	mu    sync.Mutex
	todos []model.Todo

	// Err, when set, is returned by every collection operation. Lets tests
	// exercise the storage-failure paths.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Init() error        { return nil }
func (m *MemoryStore) Close() error       { return nil }
func (m *MemoryStore) HealthCheck() error { return nil }
func (m *MemoryStore) GetDB() interface{} { return nil }

// Seed inserts records as-is, without touching ids or timestamps.
func (m *MemoryStore) Seed(todos ...model.Todo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = append(m.todos, todos...)
}

var priorityOrder = map[model.Priority]int{
	model.PriorityLow:    1,
	model.PriorityMedium: 2,
	model.PriorityHigh:   3,
}

func (m *MemoryStore) FindTodos(_ context.Context, filter query.Filter, s query.Sort) ([]model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	out := []model.Todo{}
	for _, t := range m.todos {
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}

	switch s {
	case query.SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case query.SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			if priorityOrder[out[i].Priority] != priorityOrder[out[j].Priority] {
				return priorityOrder[out[i].Priority] > priorityOrder[out[j].Priority]
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (m *MemoryStore) InsertTodo(_ context.Context, todo model.Todo) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return model.Todo{}, m.Err
	}

	todo.ID = uuid.NewString()
	todo.UpdatedAt = time.Now().UTC()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = todo.UpdatedAt
	}

	m.todos = append(m.todos, todo)
	return todo, nil
}

// DeleteTodoByID removes the record outright. The GORM store soft-deletes
// and relies on the retention purge; here there is no retention to model,
// and callers only observe absence either way.
func (m *MemoryStore) DeleteTodoByID(_ context.Context, id string) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return model.Todo{}, m.Err
	}

	for i, t := range m.todos {
		if t.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return t, nil
		}
	}
	return model.Todo{}, ErrTodoNotFound
}

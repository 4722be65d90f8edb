package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/meprashantkumar/todo-api/database"
	"github.com/meprashantkumar/todo-api/model"
	"github.com/meprashantkumar/todo-api/query"
	"github.com/meprashantkumar/todo-api/utils/cache"
	"golang.org/x/sync/singleflight"
)

// defaultListKey caches the unfiltered, default-sorted list only. A single
// key keeps invalidation exact: mutations delete it and nothing else.
const defaultListKey = "todos:list:default"

const listCacheTTL = 30 * time.Second

// ListCache is the subset of cache operations the service needs. It is
// satisfied by *cache.RedisCache.
type ListCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ ListCache = (*cache.RedisCache)(nil)

// TodoService orchestrates entity construction, the query builder's output
// and the persistence gateway. The cache is optional; nil disables it.
type TodoService struct {
	store database.Storage
	cache ListCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(store database.Storage, c ListCache) *TodoService {
	return &TodoService{store: store, cache: c}
}

// List returns every todo matching the filter in the requested order.
// The default list (no filter, default sort) is served from cache when
// possible; concurrent misses collapse to one store read.
func (s *TodoService) List(ctx context.Context, filter query.Filter, sort query.Sort) ([]model.Todo, error) {
	cacheable := s.cache != nil && filter.Completed == nil && filter.Priority == "" && sort == query.SortCreatedDesc
	if !cacheable {
		return s.store.FindTodos(ctx, filter, sort)
	}

	v, err, _ := s.sf.Do(defaultListKey, func() (interface{}, error) {
		var cached []model.Todo
		if err := s.cache.GetJSON(ctx, defaultListKey, &cached); err == nil {
			return cached, nil
		}

		todos, err := s.store.FindTodos(ctx, filter, sort)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetJSON(ctx, defaultListKey, todos, listCacheTTL); err != nil {
			log.Printf("todo list cache write failed: %v", err)
		}
		return todos, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Todo), nil
}

// Create validates the input, constructs the entity and persists it. The
// returned record carries the storage-assigned id and final timestamps.
func (s *TodoService) Create(ctx context.Context, title, description, priority string) (model.Todo, error) {
	todo, err := model.NewTodo(title, description, priority)
	if err != nil {
		return model.Todo{}, err
	}

	stored, err := s.store.InsertTodo(ctx, todo)
	if err != nil {
		return model.Todo{}, err
	}

	s.invalidate(ctx)
	return stored, nil
}

// Delete removes the todo with the given id. An id that does not parse as
// a UUID cannot match any stored record, so it is reported as not found
// without touching the store.
func (s *TodoService) Delete(ctx context.Context, id string) (model.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Todo{}, database.ErrTodoNotFound
	}

	deleted, err := s.store.DeleteTodoByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	s.invalidate(ctx)
	return deleted, nil
}

func (s *TodoService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, defaultListKey); err != nil {
		log.Printf("todo list cache invalidation failed: %v", err)
	}
}

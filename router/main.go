package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meprashantkumar/todo-api/database"
	"github.com/meprashantkumar/todo-api/handlers"
	todo_handlers "github.com/meprashantkumar/todo-api/handlers/todo"
	"github.com/meprashantkumar/todo-api/services"
	"github.com/meprashantkumar/todo-api/utils/cache"
)

// SetupRoutes registers all routes on the given app. The store and cache
// are the process-wide instances built during app setup; nothing here
// reaches for global state. A nil redisCache disables list caching.
func SetupRoutes(app *fiber.App, store database.Storage, redisCache *cache.RedisCache) {
	app.Get("/health", handlers.HandleCheckHealth)

	// A nil *RedisCache must stay a nil ListCache, or the service would
	// see a non-nil interface wrapping a nil pointer.
	var listCache services.ListCache
	if redisCache != nil {
		listCache = redisCache
	}

	todoService := services.NewTodoService(store, listCache)
	todoHandler := todo_handlers.NewTodoHandler(todoService)

	api := app.Group("/api")
	api.Get("/todos", todoHandler.ListTodos)
	api.Post("/todos", todoHandler.CreateTodo)
	api.Delete("/todos/:id", todoHandler.DeleteTodo)
}

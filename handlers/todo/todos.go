package todo

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/meprashantkumar/todo-api/database"
	"github.com/meprashantkumar/todo-api/model"
	"github.com/meprashantkumar/todo-api/query"
	"github.com/meprashantkumar/todo-api/services"
	"github.com/meprashantkumar/todo-api/utils/response"
	"github.com/meprashantkumar/todo-api/utils/validation"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	svc       *services.TodoService
	validator *validation.Validator
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(svc *services.TodoService) *TodoHandler {
	return &TodoHandler{
		svc:       svc,
		validator: validation.NewValidator(),
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// ListTodos handles GET /api/todos
func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	filter, sort := query.Build(c.Query("completed"), c.Query("priority"), c.Query("sort"))

	todos, err := h.svc.List(c.UserContext(), filter, sort)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, todos)
}

// CreateTodo handles POST /api/todos
func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FirstErrorMessage(err))
	}

	created, err := h.svc.Create(c.UserContext(), req.Title, req.Description, req.Priority)
	if err != nil {
		// Whitespace-only titles pass the required tag but fail entity
		// construction.
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return response.BadRequest(c, verr.Message)
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Created(c, created)
}

// DeleteTodo handles DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := h.svc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, database.ErrTodoNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.SuccessWithMessage(c, "Todo deleted successfully")
}

package todo_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meprashantkumar/todo-api/database"
	"github.com/meprashantkumar/todo-api/model"
	"github.com/meprashantkumar/todo-api/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    []model.Todo `json:"data"`
}

type singleEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    model.Todo `json:"data"`
}

func newTestApp(store database.Storage) *fiber.App {
	app := fiber.New()
	router.SetupRoutes(app, store, nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestCreateTodo(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	resp, raw := doJSON(t, app, "POST", "/api/todos",
		`{"title":"  Write report  ","description":"quarterly numbers","priority":"high"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out singleEnvelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Data.ID)
	assert.Equal(t, "Write report", out.Data.Title)
	assert.Equal(t, "quarterly numbers", out.Data.Description)
	assert.Equal(t, model.PriorityHigh, out.Data.Priority)
	assert.False(t, out.Data.Completed)
	assert.False(t, out.Data.CreatedAt.IsZero())
	assert.False(t, out.Data.UpdatedAt.Before(out.Data.CreatedAt))
}

func TestCreateTodoDefaultsPriorityToMedium(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	resp, raw := doJSON(t, app, "POST", "/api/todos", `{"title":"no priority given"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out singleEnvelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, model.PriorityMedium, out.Data.Priority)
}

func TestCreateTodoMissingTitle(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	for _, body := range []string{`{}`, `{"title":"   "}`, `{"description":"no title"}`} {
		resp, raw := doJSON(t, app, "POST", "/api/todos", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body %s", body)

		var out envelope
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.False(t, out.Success)
		assert.Equal(t, "Title is required", out.Message)
	}
}

func TestCreateTodoInvalidPriority(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	resp, raw := doJSON(t, app, "POST", "/api/todos", `{"title":"x","priority":"urgent"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Priority must be one of: low, medium, high", out.Message)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	_, raw := doJSON(t, app, "POST", "/api/todos", `{"title":"round trip","priority":"low"}`)
	var created singleEnvelope
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, "GET", "/api/todos", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed envelope
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, created.Data, listed.Data[0])
}

func TestListTodosFilterComposition(t *testing.T) {
	store := database.NewMemoryStore()
	seedAllCombinations(store)
	app := newTestApp(store)

	resp, raw := doJSON(t, app, "GET", "/api/todos?completed=true&priority=high", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 1)
	assert.True(t, out.Data[0].Completed)
	assert.Equal(t, model.PriorityHigh, out.Data[0].Priority)
}

func TestListTodosUnrecognizedCompletedDoesNotFilter(t *testing.T) {
	store := database.NewMemoryStore()
	seedAllCombinations(store)
	app := newTestApp(store)

	_, raw := doJSON(t, app, "GET", "/api/todos?completed=maybe", "")

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.Data, 6)
}

func TestListTodosDefaultSortNewestFirst(t *testing.T) {
	store := database.NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Seed(
		model.Todo{ID: "a", Title: "oldest", Priority: model.PriorityMedium, CreatedAt: base},
		model.Todo{ID: "b", Title: "middle", Priority: model.PriorityMedium, CreatedAt: base.Add(time.Hour)},
		model.Todo{ID: "c", Title: "newest", Priority: model.PriorityMedium, CreatedAt: base.Add(2 * time.Hour)},
	)
	app := newTestApp(store)

	_, raw := doJSON(t, app, "GET", "/api/todos", "")

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 3)
	assert.Equal(t, "newest", out.Data[0].Title)
	assert.Equal(t, "middle", out.Data[1].Title)
	assert.Equal(t, "oldest", out.Data[2].Title)
}

func TestListTodosSortByTitle(t *testing.T) {
	store := database.NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Seed(
		model.Todo{ID: "1", Title: "charlie", Priority: model.PriorityMedium, CreatedAt: base.Add(2 * time.Hour)},
		model.Todo{ID: "2", Title: "alpha", Priority: model.PriorityMedium, CreatedAt: base.Add(time.Hour)},
		model.Todo{ID: "3", Title: "bravo", Priority: model.PriorityMedium, CreatedAt: base},
	)
	app := newTestApp(store)

	_, raw := doJSON(t, app, "GET", "/api/todos?sort=title", "")

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 3)
	assert.Equal(t, "alpha", out.Data[0].Title)
	assert.Equal(t, "bravo", out.Data[1].Title)
	assert.Equal(t, "charlie", out.Data[2].Title)
}

func TestListTodosSortByPrioritySeverity(t *testing.T) {
	store := database.NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Seed(
		model.Todo{ID: "1", Title: "l", Priority: model.PriorityLow, CreatedAt: base},
		model.Todo{ID: "2", Title: "m", Priority: model.PriorityMedium, CreatedAt: base.Add(time.Minute)},
		model.Todo{ID: "3", Title: "h", Priority: model.PriorityHigh, CreatedAt: base.Add(2 * time.Minute)},
	)
	app := newTestApp(store)

	_, raw := doJSON(t, app, "GET", "/api/todos?sort=priority", "")

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 3)
	// Severity order, not lexicographic: high > medium > low.
	assert.Equal(t, model.PriorityHigh, out.Data[0].Priority)
	assert.Equal(t, model.PriorityMedium, out.Data[1].Priority)
	assert.Equal(t, model.PriorityLow, out.Data[2].Priority)
}

func TestListTodosStorageError(t *testing.T) {
	store := database.NewMemoryStore()
	store.Err = assert.AnError
	app := newTestApp(store)

	resp, raw := doJSON(t, app, "GET", "/api/todos", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Equal(t, assert.AnError.Error(), out.Message)
}

func TestDeleteTodo(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	_, raw := doJSON(t, app, "POST", "/api/todos", `{"title":"short-lived"}`)
	var created singleEnvelope
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, "DELETE", "/api/todos/"+created.Data.ID, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Todo deleted successfully", out.Message)

	_, raw = doJSON(t, app, "GET", "/api/todos", "")
	var listed envelope
	require.NoError(t, json.Unmarshal(raw, &listed))
	assert.Empty(t, listed.Data)
}

func TestDeleteTodoAbsentIDTwice(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	const id = "8c2c9f5e-3f8e-4a68-9a46-5b7a2c7d9d10"
	for i := 0; i < 2; i++ {
		resp, raw := doJSON(t, app, "DELETE", "/api/todos/"+id, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var out envelope
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.False(t, out.Success)
		assert.Equal(t, "Todo not found", out.Message)
	}
}

func TestDeleteTodoMalformedID(t *testing.T) {
	app := newTestApp(database.NewMemoryStore())

	resp, raw := doJSON(t, app, "DELETE", "/api/todos/definitely-not-a-uuid", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Todo not found", out.Message)
}

func seedAllCombinations(store *database.MemoryStore) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	for _, completed := range []bool{true, false} {
		for _, p := range []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh} {
			store.Seed(model.Todo{
				ID:        string(rune('a' + i)),
				Title:     "task " + string(p),
				Completed: completed,
				Priority:  p,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			i++
		}
	}
}

package todosrepobridge_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/todoview/bridge/repositories/todosrepobridge"
	"github.com/jrazmi/todoview/bridge/scaffolding/mid"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoview/infrastructure/web"
	"github.com/jrazmi/todoview/sdk/logger"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewDefault(logger.WithOutput(io.Discard))

	store, err := todosmemstore.New(todosrepo.SampleTasks())
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	todosrepobridge.AddHttpRoutes(wh.Group("/api"), todosrepobridge.Config{
		Repository: todosrepo.NewRepository(log, store),
	})
	return wh
}

func do(t *testing.T, h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, url, r))
	return rec
}

func decodeTodos(t *testing.T, rec *httptest.ResponseRecorder) []todosrepobridge.Todo {
	t.Helper()
	var out []todosrepobridge.Todo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestList(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		url  string
		want []int
	}{
		{"/api/todos", []int{1, 2, 3, 4}},
		{"/api/todos?completed=true", []int{1, 3}},
		{"/api/todos?completed=false", []int{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.url, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			todos := decodeTodos(t, rec)
			if len(todos) != len(tt.want) {
				t.Fatalf("got %d todos, want %d", len(todos), len(tt.want))
			}
			for i, id := range tt.want {
				if todos[i].ID != id {
					t.Errorf("position %d id = %d, want %d", i, todos[i].ID, id)
				}
			}
		})
	}
}

func TestListFieldNames(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/api/todos?completed=true", "")

	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	first := raw[0]
	for _, k := range []string{"id", "title", "description", "completed"} {
		if _, ok := first[k]; !ok {
			t.Errorf("field %q missing from %v", k, first)
		}
	}
	if len(first) != 4 {
		t.Errorf("unexpected extra fields: %v", first)
	}
}

func TestListBadFilter(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/api/todos?completed=all", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetByID(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		url    string
		status int
		title  string
	}{
		{"/api/todos/3", http.StatusOK, "Sally's books"},
		{"/api/todos/99", http.StatusNotFound, ""},
		{"/api/todos/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.url, "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.title == "" {
				return
			}
			var todo todosrepobridge.Todo
			if err := json.Unmarshal(rec.Body.Bytes(), &todo); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if todo.Title != tt.title || !todo.Completed {
				t.Errorf("todo = %+v", todo)
			}
		})
	}
}

func TestWritesRefused(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		method string
		url    string
		body   string
		status int
	}{
		{http.MethodPost, "/api/todos", `{"title":"Buy milk"}`, http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/todos", `not json`, http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/todos", "", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/todos/1", `{"completed":false}`, http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/todos/abc", `{"completed":`, http.StatusMethodNotAllowed},
		{http.MethodPatch, "/api/todos/2", `{"completed":true}`, http.StatusMethodNotAllowed},
		{http.MethodPatch, "/api/todos/99", `[1,2]`, http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/todos/4", "", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/todos/x", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.body, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.url, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status == http.StatusMethodNotAllowed && !strings.Contains(rec.Body.String(), "operation not supported") {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}

	// Nothing changed.
	todos := decodeTodos(t, do(t, h, http.MethodGet, "/api/todos", ""))
	if len(todos) != 4 || todos[0].Completed != true || todos[1].Completed != false {
		t.Errorf("store changed: %+v", todos)
	}
}

func TestExport(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		url         string
		status      int
		contentType string
		contains    string
	}{
		{"/api/todos/export", http.StatusOK, "application/json", `"Go to Market"`},
		{"/api/todos/export?format=csv&completed=false", http.StatusOK, "text/csv", "2,Study,"},
		{"/api/todos/export?format=yaml", http.StatusOK, "application/yaml", "tasks:"},
		{"/api/todos/export?format=pdf", http.StatusOK, "application/pdf", "%PDF-"},
		{"/api/todos/export?format=xlsx", http.StatusBadRequest, "application/json", "unknown export format"},
		{"/api/todos/export?completed=maybe", http.StatusBadRequest, "application/json", "invalid completed"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.url, "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("content type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestExportFiltered(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/api/todos/export?completed=true", "")
	todos := decodeTodos(t, rec)
	if len(todos) != 2 || todos[0].ID != 1 || todos[1].ID != 3 {
		t.Errorf("todos = %+v", todos)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=todos.json" {
		t.Errorf("content disposition = %q", cd)
	}
}

package todoviewbridge_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jrazmi/todoview/bridge/scaffolding/mid"
	"github.com/jrazmi/todoview/bridge/views/todoviewbridge"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoview/core/view"
	"github.com/jrazmi/todoview/infrastructure/web"
	"github.com/jrazmi/todoview/sdk/logger"
)

var (
	rowTitleRE  = regexp.MustCompile(`<span class="(todo-title[^"]*)" title="[^"]*">([^<]+)</span>`)
	activeTabRE = regexp.MustCompile(`class="active"[^>]*>([^<]+)</a>`)
)

func newHandler(t *testing.T, seed []todosrepo.Task) http.Handler {
	t.Helper()
	log := logger.NewDefault(logger.WithOutput(io.Discard))

	store, err := todosmemstore.New(seed)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	if err := todoviewbridge.AddHttpRoutes(wh, todoviewbridge.Config{
		Repository: todosrepo.NewRepository(log, store),
	}); err != nil {
		t.Fatalf("routes: %v", err)
	}
	return wh
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

type renderedRow struct {
	class string
	title string
}

func rows(body string) []renderedRow {
	var out []renderedRow
	for _, m := range rowTitleRE.FindAllStringSubmatch(body, -1) {
		out = append(out, renderedRow{class: m[1], title: m[2]})
	}
	return out
}

func activeTabs(body string) []string {
	var out []string
	for _, m := range activeTabRE.FindAllStringSubmatch(body, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestIndex(t *testing.T) {
	h := newHandler(t, todosrepo.SampleTasks())

	tests := []struct {
		name   string
		url    string
		titles []string
		active string
		class  string
	}{
		{"initial render", "/", []string{"Study", "Article"}, "Incomplete", "todo-title mr-2"},
		{"incomplete", "/?completed=false", []string{"Study", "Article"}, "Incomplete", "todo-title mr-2"},
		{"complete", "/?completed=true", []string{"Go to Market", "Sally&#39;s books"}, "Complete", "todo-title mr-2 completed-todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.url)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("content type = %q", ct)
			}

			body := rec.Body.String()
			got := rows(body)
			if len(got) != len(tt.titles) {
				t.Fatalf("rendered %d rows, want %d:\n%s", len(got), len(tt.titles), body)
			}
			for i, want := range tt.titles {
				if got[i].title != want {
					t.Errorf("row %d title = %q, want %q", i, got[i].title, want)
				}
				if got[i].class != tt.class {
					t.Errorf("row %d class = %q, want %q", i, got[i].class, tt.class)
				}
			}

			if tabs := activeTabs(body); len(tabs) != 1 || tabs[0] != tt.active {
				t.Errorf("active tabs = %v, want [%s]", tabs, tt.active)
			}
			if strings.Count(body, ">Edit</button>") != len(tt.titles) || strings.Count(body, ">Delete</button>") != len(tt.titles) {
				t.Error("each row needs one Edit and one Delete button")
			}
			if !strings.Contains(body, ">Add task</button>") || !strings.Contains(body, "<h1") {
				t.Error("page chrome missing")
			}
		})
	}
}

func TestIndexDescriptionAsHover(t *testing.T) {
	body := get(t, newHandler(t, todosrepo.SampleTasks()), "/").Body.String()
	if !strings.Contains(body, `title="Read Algebra and History textbook for upcoming test">Study</span>`) {
		t.Errorf("description not rendered as title attribute:\n%s", body)
	}
}

func TestIndexSelectTwice(t *testing.T) {
	h := newHandler(t, todosrepo.SampleTasks())
	a := get(t, h, "/?completed=true").Body.String()
	b := get(t, h, "/?completed=true").Body.String()
	if a != b {
		t.Error("repeated selection rendered differently")
	}
}

func TestIndexEmptyStore(t *testing.T) {
	rec := get(t, newHandler(t, nil), "/?completed=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rows(rec.Body.String()); len(got) != 0 {
		t.Errorf("rows = %v, want none", got)
	}
}

func TestIndexBadSelection(t *testing.T) {
	rec := get(t, newHandler(t, todosrepo.SampleTasks()), "/?completed=all")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	rec := get(t, newHandler(t, todosrepo.SampleTasks()), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStylesheet(t *testing.T) {
	rec := get(t, newHandler(t, todosrepo.SampleTasks()), "/static/app.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".completed-todo") {
		t.Error("stylesheet missing completed rule")
	}
}

func TestRender(t *testing.T) {
	page := view.Project([]todosrepo.Task{{ID: 9, Title: "<b>x</b>", Completed: true}}, view.NewState())
	out, err := todoviewbridge.Render(page)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<b>x</b>") {
		t.Error("title rendered unescaped")
	}
}

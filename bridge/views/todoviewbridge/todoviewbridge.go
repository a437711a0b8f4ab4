// Package todoviewbridge serves the task list as an HTML page.
package todoviewbridge

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jrazmi/todoview/bridge/scaffolding/errs"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/view"
	"github.com/jrazmi/todoview/infrastructure/web"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// StaticPath is where the stylesheet is served.
const StaticPath = "/static/"

var pageTmpl = template.Must(template.ParseFS(templates, "templates/index.html"))

// Config holds configuration for the page bridge.
type Config struct {
	Repository *todosrepo.Repository
	Middleware []web.Middleware
}

type bridge struct {
	todoRepository *todosrepo.Repository
}

type pageData struct {
	view.Page
	StaticPath string
}

// AddHttpRoutes registers the page at / and its stylesheet.
func AddHttpRoutes(wh *web.WebHandler, cfg Config) error {
	b := &bridge{todoRepository: cfg.Repository}

	wh.GET("/{$}", b.httpIndex, cfg.Middleware...)

	if err := wh.FileServer(static, "static", StaticPath); err != nil {
		return fmt.Errorf("static files: %w", err)
	}
	return nil
}

func (b *bridge) httpIndex(ctx context.Context, r *http.Request) web.Encoder {
	state := view.NewState()

	if raw := web.QueryParam(r, "completed"); r.URL.Query().Has("completed") {
		completed, err := view.ParseSelection(raw)
		if err != nil {
			return errs.New(errs.InvalidArgument, err)
		}
		state.Select(completed)
	}

	tasks, err := b.todoRepository.List(ctx, todosrepo.QueryFilter{})
	if err != nil {
		return errs.Newf(errs.Internal, "list todos: %s", err)
	}

	body, err := Render(view.Project(tasks, state))
	if err != nil {
		return errs.Newf(errs.Internal, "render: %s", err)
	}

	return web.NewHTMLResponse(body)
}

// Render executes the page template for p.
func Render(p view.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Page: p, StaticPath: StaticPath}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

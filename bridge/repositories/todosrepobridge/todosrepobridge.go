// Package todosrepobridge exposes the task repository over JSON.
package todosrepobridge

import (
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/infrastructure/web"
)

// Config holds configuration for the Todo bridge
type Config struct {
	Repository *todosrepo.Repository
	Middleware []web.Middleware
}

type bridge struct {
	todoRepository *todosrepo.Repository
}

func newBridge(cfg Config) *bridge {
	return &bridge{
		todoRepository: cfg.Repository,
	}
}

// AddHttpRoutes registers the todo routes on group. Reads are served; the
// write routes exist so clients get a clear 405 instead of a 404.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)
	mw := cfg.Middleware

	group.GET("/todos", b.httpList, mw...)
	group.GET("/todos/export", b.httpExport, mw...)
	group.GET("/todos/{todo_id}", b.httpGetByID, mw...)
	group.POST("/todos", b.httpCreate, mw...)
	group.PUT("/todos/{todo_id}", b.httpUpdate, mw...)
	group.PATCH("/todos/{todo_id}", b.httpUpdate, mw...)
	group.DELETE("/todos/{todo_id}", b.httpDelete, mw...)
}

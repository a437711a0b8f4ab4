// Package api binds the bridges to a web handler.
package api

import (
	"context"
	"expvar"
	"fmt"
	"net/http"

	"github.com/jrazmi/todoview/app/todoview/config"
	"github.com/jrazmi/todoview/bridge/repositories/todosrepobridge"
	"github.com/jrazmi/todoview/bridge/views/todoviewbridge"
	"github.com/jrazmi/todoview/infrastructure/web"
)

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
	Build  string `json:"build"`
	Tasks  int    `json:"tasks"`
}

// AddHandlers registers the page, the JSON api, health and debug routes.
func AddHandlers(wh *web.WebHandler, cfg config.Todoview) error {
	todosrepobridge.AddHttpRoutes(wh.Group(config.ApiRoute), todosrepobridge.Config{
		Repository: cfg.Repositories.Todo,
	})

	if err := todoviewbridge.AddHttpRoutes(wh, todoviewbridge.Config{
		Repository: cfg.Repositories.Todo,
	}); err != nil {
		return fmt.Errorf("todo page: %w", err)
	}

	health := Health{Status: "ok", Build: cfg.Build, Tasks: cfg.TaskCount}
	wh.GET("/health", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse(health)
	})

	wh.HandleRaw("GET /debug/vars", expvar.Handler())

	return nil
}

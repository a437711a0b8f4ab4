package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/todoview/bridge/scaffolding/metrics"
	"github.com/jrazmi/todoview/infrastructure/web"
)

// goroutineSample is how many requests pass between goroutine gauge updates.
const goroutineSample = 1000

// Metrics counts requests per route and per response status.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			if n := metrics.AddRequests(ctx, r.Pattern); n%goroutineSample == 0 {
				metrics.AddGoroutines(ctx)
			}
			metrics.AddStatus(ctx, web.StatusOf(resp))

			if isError(resp) != nil {
				metrics.AddErrors(ctx)
			}

			return resp
		}
	}
}

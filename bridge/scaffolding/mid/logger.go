package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/todoview/infrastructure/web"
	"github.com/jrazmi/todoview/sdk/logger"
)

// Logger writes a line when a request starts and when it completes.
func Logger(log *logger.Logger, tel web.Telemetry) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()
			traceID := ""
			if tel != nil {
				traceID = tel.GetTraceID(ctx)
			}

			p := r.URL.Path
			if r.URL.RawQuery != "" {
				p = p + "?" + r.URL.RawQuery
			}

			log.InfoContext(ctx, "request started", "trace_id", traceID, "method", r.Method, "path", p,
				"remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			status := web.StatusOf(resp)

			log.InfoContext(ctx, "request completed", "trace_id", traceID, "method", r.Method, "path", p,
				"remoteaddr", r.RemoteAddr, "status", status, "since", time.Since(now).String())

			return resp
		}
	}
}

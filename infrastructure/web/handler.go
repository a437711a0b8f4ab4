package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jrazmi/todoview/sdk/environment"
)

const traceHeader = "X-Trace-Id"

// WebHandler routes requests to HandlerFuncs through the global middleware.
type WebHandler struct {
	verbs
	mux       *http.ServeMux
	log       *slog.Logger
	telemetry Telemetry

	corsOrigins    []string
	defaultHeaders map[string]string

	globalMiddleware []Middleware

	// preflight holds the paths that already answer OPTIONS.
	preflight map[string]bool
}

// HandlerOptions is the exportable configuration struct
type HandlerOptions struct {
	CORSOrigins    []string `env:"CORS_ORIGINS" default:"*" separator:","`
	DefaultHeaders map[string]string
}

type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	log              *slog.Logger
	telemetry        Telemetry
	corsOrigins      []string
	defaultHeaders   map[string]string
	globalMiddleware []Middleware
}

// WithLogging sets the logger
func WithLogging(log *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.log = log
	}
}

// WithTelemetry sets the telemetry provider
func WithTelemetry(tel Telemetry) HandlerOption {
	return func(o *handlerOptions) {
		o.telemetry = tel
	}
}

// WithDefaultHeaders sets headers written on every response
func WithDefaultHeaders(headers map[string]string) HandlerOption {
	return func(o *handlerOptions) {
		if o.defaultHeaders == nil {
			o.defaultHeaders = make(map[string]string)
		}
		for k, v := range headers {
			o.defaultHeaders[k] = v
		}
	}
}

// WithGlobalMiddleware adds middleware applied to every route
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(o *handlerOptions) {
		o.globalMiddleware = append(o.globalMiddleware, middleware...)
	}
}

// NewWebHandlerFromEnv creates a new WebHandler from environment variables
func NewWebHandlerFromEnv(prefix string, opts ...HandlerOption) (*WebHandler, error) {
	var cfg HandlerOptions
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing webhandler config: %w", err)
	}
	return NewWebHandler(cfg, opts...), nil
}

// NewWebHandler creates a WebHandler from cfg and applies opts on top.
func NewWebHandler(cfg HandlerOptions, opts ...HandlerOption) *WebHandler {
	o := &handlerOptions{
		corsOrigins:    cfg.CORSOrigins,
		defaultHeaders: make(map[string]string),
	}
	for k, v := range cfg.DefaultHeaders {
		o.defaultHeaders[k] = v
	}
	for _, opt := range opts {
		opt(o)
	}

	wh := &WebHandler{
		mux:              http.NewServeMux(),
		log:              o.log,
		telemetry:        o.telemetry,
		corsOrigins:      o.corsOrigins,
		defaultHeaders:   o.defaultHeaders,
		globalMiddleware: o.globalMiddleware,
		preflight:        make(map[string]bool),
	}

	wh.verbs = verbs{handle: wh.Handle}

	// CORS runs before every other middleware.
	if len(wh.corsOrigins) > 0 {
		wh.globalMiddleware = append([]Middleware{wh.corsMiddleware()}, wh.globalMiddleware...)
	}

	return wh
}

// Handle registers handler for method and path with the global middleware
// plus any route middleware. With CORS enabled every path also answers
// OPTIONS, which the CORS middleware turns into a preflight response.
func (wh *WebHandler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	method = strings.ToUpper(method)
	if method == http.MethodOptions {
		wh.preflight[path] = true
	}

	wh.register(method, path, handler, middleware...)

	if len(wh.corsOrigins) > 0 && !wh.preflight[path] {
		wh.preflight[path] = true
		wh.register(http.MethodOptions, path, func(ctx context.Context, r *http.Request) Encoder {
			return NewNoResponse()
		})
	}
}

func (wh *WebHandler) register(method, path string, handler HandlerFunc, middleware ...Middleware) {
	final := wh.buildHandlerChain(handler, middleware...)

	h := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if wh.telemetry != nil {
			ctx = wh.telemetry.WithTraceID(ctx, r.Header.Get(traceHeader))
			w.Header().Set(traceHeader, wh.telemetry.GetTraceID(ctx))
		}
		ctx = setWriter(ctx, w)
		for k, v := range wh.defaultHeaders {
			w.Header().Set(k, v)
		}

		resp := final(ctx, r)

		if err := Respond(ctx, w, resp); err != nil && wh.log != nil {
			wh.log.ErrorContext(ctx, "respond error", "error", err)
		}
	}

	wh.mux.HandleFunc(fmt.Sprintf("%s %s", method, path), h)
}

// HandleRaw registers a plain http.Handler. Global middleware is not applied.
func (wh *WebHandler) HandleRaw(pattern string, handler http.Handler) {
	wh.mux.Handle(pattern, handler)
}

func (wh *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wh.mux.ServeHTTP(w, r)
}

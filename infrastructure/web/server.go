package web

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jrazmi/todoview/sdk/environment"
)

// WebServer wraps http.Server with additional configuration
type WebServer struct {
	*http.Server
	Config ServerConfig
}

// ServerConfig holds web server configuration (exportable)
type ServerConfig struct {
	Port            string        `env:"PORT" default:":8080"`
	EnableDebug     bool          `env:"ENABLE_DEBUG" default:"false"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"20s"`
}

type serveroptions struct {
	handler  http.Handler
	errorLog *log.Logger
	config   ServerConfig
}

// ServerOption overrides a server setting after config is applied.
type ServerOption func(*serveroptions)

// WithHandler sets the HTTP handler
func WithHandler(handler http.Handler) ServerOption {
	return func(o *serveroptions) {
		o.handler = handler
	}
}

// WithErrorLog sets the error logger
func WithErrorLog(errorLog *log.Logger) ServerOption {
	return func(o *serveroptions) {
		o.errorLog = errorLog
	}
}

// WithPort sets the listen address
func WithPort(port string) ServerOption {
	return func(o *serveroptions) {
		o.config.Port = port
	}
}

// WithShutdownTimeout sets the shutdown timeout
func WithShutdownTimeout(timeout time.Duration) ServerOption {
	return func(o *serveroptions) {
		o.config.ShutdownTimeout = timeout
	}
}

// LoadServerConfig reads <prefix>_PORT, <prefix>_READ_TIMEOUT and friends.
func LoadServerConfig(prefix string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parsing webserver config: %w", err)
	}
	return cfg, nil
}

// NewWebServer creates the http.Server for cfg.
func NewWebServer(cfg ServerConfig, opts ...ServerOption) *WebServer {
	o := &serveroptions{config: cfg}
	for _, opt := range opts {
		opt(o)
	}

	server := &http.Server{
		Addr:         o.config.Port,
		Handler:      o.handler,
		ReadTimeout:  o.config.ReadTimeout,
		WriteTimeout: o.config.WriteTimeout,
		IdleTimeout:  o.config.IdleTimeout,
		ErrorLog:     o.errorLog,
	}

	return &WebServer{
		Server: server,
		Config: o.config,
	}
}

package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/jrazmi/todoview/sdk/environment"
)

// Levels re-exported so callers need not import slog.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger is a wrapper around the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// options holds all configurable settings for the logger.
type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string // "json" or "text"
	timeFormat string // "RFC3339", "RFC3339Nano", "Unix", "UnixMilli" or a layout
}

// Options is the exportable configuration struct.
type Options struct {
	Level      string `env:"LOG_LEVEL" default:"INFO"`
	Output     string `env:"LOG_OUTPUT" default:"STDOUT"`
	Format     string `env:"LOG_FORMAT" default:"json"`
	TimeFormat string `env:"LOG_TIME_FORMAT" default:"RFC3339"`
	AddSource  bool   `env:"LOG_ADD_SOURCE" default:"false"`
}

// Option overrides a setting after the config has been applied.
type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

// WithOutput sends log records to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// NewDefault builds a JSON logger writing to stderr at INFO.
func NewDefault(opts ...Option) *Logger {
	cfg := Options{
		Level:      "INFO",
		Output:     "STDERR",
		Format:     "json",
		TimeFormat: "RFC3339",
	}
	return newLogger(cfg, opts...)
}

// NewFromEnv builds a logger from <prefix>_LOG_* variables.
func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(cfg, opts...), nil
}

// NewStdLogger adapts the logger for APIs that want a *log.Logger, such as
// http.Server.ErrorLog.
func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), level)
}

func newLogger(cfg Options, opts ...Option) *Logger {
	o := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		addSource:  cfg.AddSource,
		format:     cfg.Format,
		timeFormat: cfg.TimeFormat,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey || o.timeFormat == "" || len(groups) > 0 {
				return a
			}
			t := a.Value.Time()
			switch o.timeFormat {
			case "Unix":
				return slog.Int64(slog.TimeKey, t.Unix())
			case "UnixMilli":
				return slog.Int64(slog.TimeKey, t.UnixMilli())
			case "RFC3339Nano":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339Nano))
			case "RFC3339":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339))
			default:
				return slog.String(slog.TimeKey, t.Format(o.timeFormat))
			}
		},
	}

	var handler slog.Handler
	switch o.format {
	case "text":
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// DebugContextf logs a debug message with formatting
func (l *Logger) DebugContextf(ctx context.Context, format string, args ...any) {
	l.DebugContext(ctx, fmt.Sprintf(format, args...))
}

// InfoContextf logs an info message with formatting
func (l *Logger) InfoContextf(ctx context.Context, format string, args ...any) {
	l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// WarnContextf logs a warning message with formatting
func (l *Logger) WarnContextf(ctx context.Context, format string, args ...any) {
	l.WarnContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorContextf logs an error message with formatting
func (l *Logger) ErrorContextf(ctx context.Context, format string, args ...any) {
	l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

package postgresdb

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// LoggingQueryTracer logs every statement sent through a pool.
type LoggingQueryTracer struct {
	logger *slog.Logger
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger}
}

var (
	replaceSpacesAroundParens = regexp.MustCompile(`\s*([()])\s*`)
	replaceSpaces             = regexp.MustCompile(`\s+`)
)

// prettyPrintSQL collapses a multi line statement into a single line.
func prettyPrintSQL(sql string) string {
	pretty := replaceSpaces.ReplaceAllString(sql, " ")
	pretty = replaceSpacesAroundParens.ReplaceAllString(pretty, "$1")
	return strings.TrimSpace(pretty)
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	l.logger.DebugContext(ctx, "query start",
		slog.String("sql", prettyPrintSQL(data.SQL)),
		slog.Any("args", data.Args),
	)
	return ctx
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		l.logger.ErrorContext(ctx, "query end",
			slog.String("error", data.Err.Error()),
			slog.String("command_tag", data.CommandTag.String()),
		)
		return
	}

	l.logger.DebugContext(ctx, "query end",
		slog.String("command_tag", data.CommandTag.String()),
	)
}

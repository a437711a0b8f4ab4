// Package telemetry provides per-request trace ids.
package telemetry

import (
	"context"

	"github.com/google/uuid"
)

type telKey int

const traceIDKey telKey = iota + 1

// NoTrace is returned when a context carries no trace id.
const NoTrace = "00000000-0000-0000-0000-000000000000"

// TraceHeader is echoed on responses and honoured on requests.
const TraceHeader = "X-Trace-Id"

type Telemetry struct{}

func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID stores a fresh random trace id in ctx.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceIDKey, uuid.NewString())
}

// WithTraceID stores id in ctx when it is a valid uuid, otherwise a fresh one.
func (t Telemetry) WithTraceID(ctx context.Context, id string) context.Context {
	if _, err := uuid.Parse(id); err != nil {
		return t.SetTraceID(ctx)
	}
	return context.WithValue(ctx, traceIDKey, id)
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return NoTrace
	}
	return v
}

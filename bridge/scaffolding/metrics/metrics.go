// Package metrics keeps process wide request counters published via expvar.
package metrics

import (
	"context"
	"expvar"
	"runtime"
	"strconv"
)

// Counters are process wide, so they are created once. expvar panics on a
// duplicate name.
var m = struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
	routes     *expvar.Map
	statuses   *expvar.Map
}{
	goroutines: expvar.NewInt("goroutines"),
	requests:   expvar.NewInt("requests"),
	errors:     expvar.NewInt("errors"),
	panics:     expvar.NewInt("panics"),
	routes:     expvar.NewMap("routes"),
	statuses:   expvar.NewMap("statuses"),
}

type ctxKey int

const key ctxKey = 1

// Set marks ctx as carrying metrics.
func Set(ctx context.Context) context.Context {
	return context.WithValue(ctx, key, true)
}

func enabled(ctx context.Context) bool {
	v, _ := ctx.Value(key).(bool)
	return v
}

// AddGoroutines refreshes the goroutine gauge and returns its value.
func AddGoroutines(ctx context.Context) int64 {
	if !enabled(ctx) {
		return 0
	}
	g := int64(runtime.NumGoroutine())
	m.goroutines.Set(g)
	return g
}

// AddRequests counts one request against route, the mux pattern that
// matched, and returns the new total.
func AddRequests(ctx context.Context, route string) int64 {
	if !enabled(ctx) {
		return 0
	}
	if route != "" {
		m.routes.Add(route, 1)
	}
	m.requests.Add(1)
	return m.requests.Value()
}

// AddStatus counts one response with the given status code.
func AddStatus(ctx context.Context, status int) {
	if !enabled(ctx) {
		return
	}
	m.statuses.Add(strconv.Itoa(status), 1)
}

// AddErrors increments the error counter and returns the new total.
func AddErrors(ctx context.Context) int64 {
	if !enabled(ctx) {
		return 0
	}
	m.errors.Add(1)
	return m.errors.Value()
}

// AddPanics increments the panic counter and returns the new total.
func AddPanics(ctx context.Context) int64 {
	if !enabled(ctx) {
		return 0
	}
	m.panics.Add(1)
	return m.panics.Value()
}

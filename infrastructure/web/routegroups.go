package web

import "strings"

// RouteGroup registers routes under a shared prefix with shared middleware.
// Group middleware runs after the handler's global middleware.
type RouteGroup struct {
	verbs
	webHandler *WebHandler
	prefix     string
	middleware []Middleware
}

func newRouteGroup(wh *WebHandler, prefix string, middleware []Middleware) *RouteGroup {
	g := &RouteGroup{
		webHandler: wh,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: middleware,
	}
	g.verbs = verbs{handle: g.Handle}
	return g
}

// Group returns a RouteGroup whose routes share prefix and middleware.
func (wh *WebHandler) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return newRouteGroup(wh, prefix, middleware)
}

// Prefix reports the path every route of g starts with.
func (g *RouteGroup) Prefix() string {
	return g.prefix
}

func (g *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	g.webHandler.Handle(method, g.prefix+path, handler, joinMiddleware(g.middleware, middleware)...)
}

// Group nests a group under g, inheriting its prefix and middleware.
func (g *RouteGroup) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return newRouteGroup(g.webHandler, g.prefix+prefix, joinMiddleware(g.middleware, middleware))
}

// joinMiddleware copies so groups never share a backing array.
func joinMiddleware(a, b []Middleware) []Middleware {
	out := make([]Middleware, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

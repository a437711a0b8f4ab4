package web

import "net/http"

// verbs gives WebHandler and RouteGroup their per-method helpers. handle is
// the owner's Handle.
type verbs struct {
	handle func(method, path string, handler HandlerFunc, middleware ...Middleware)
}

func (v verbs) GET(path string, handler HandlerFunc, middleware ...Middleware) {
	v.handle(http.MethodGet, path, handler, middleware...)
}

func (v verbs) POST(path string, handler HandlerFunc, middleware ...Middleware) {
	v.handle(http.MethodPost, path, handler, middleware...)
}

func (v verbs) PUT(path string, handler HandlerFunc, middleware ...Middleware) {
	v.handle(http.MethodPut, path, handler, middleware...)
}

func (v verbs) PATCH(path string, handler HandlerFunc, middleware ...Middleware) {
	v.handle(http.MethodPatch, path, handler, middleware...)
}

func (v verbs) DELETE(path string, handler HandlerFunc, middleware ...Middleware) {
	v.handle(http.MethodDelete, path, handler, middleware...)
}

package web

import (
	"net/http"
)

// Group mounts handlers under a shared path prefix and middleware set.
type Group struct {
	app         *App
	prefixPath  string
	middlewares []Middleware
}

// NewGroup initializes a group of http handlers with a shared prefix and
// middlewares.
func NewGroup(app *App, prefixPath string, mw ...Middleware) *Group {
	return &Group{
		app:         app,
		prefixPath:  prefixPath,
		middlewares: mw,
	}
}

// Handle mounts a handler for a verb and path under the group's prefix,
// wrapped with the group's middlewares.
func (g *Group) Handle(verb string, path string, handler Handler, mw ...Middleware) {
	middlewares := append(g.middlewares, mw...)
	g.app.Handle(verb, g.prefixPath+path, handler, middlewares...)
}

// Post mounts a POST handler within the group.
func (g *Group) Post(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPost, path, handler, mw...)
}

// Get mounts a GET handler within the group.
func (g *Group) Get(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodGet, path, handler, mw...)
}

// Put mounts a PUT handler within the group.
func (g *Group) Put(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPut, path, handler, mw...)
}

// Delete mounts a DELETE handler within the group.
func (g *Group) Delete(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodDelete, path, handler, mw...)
}

// Patch mounts a PATCH handler within the group.
func (g *Group) Patch(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPatch, path, handler, mw...)
}

// NewSubgroup derives a group nested under this one, inheriting its prefix
// and middlewares.
func (g *Group) NewSubgroup(prefixPath string, mw ...Middleware) *Group {
	middlewares := append(g.middlewares, mw...)

	return &Group{
		app:         g.app,
		prefixPath:  g.prefixPath + prefixPath,
		middlewares: middlewares,
	}
}

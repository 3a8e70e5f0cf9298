// Package router assembles the versioned API route tree.
package router

import (
	"github.com/gin-gonic/gin"
)

// Registrar is implemented by handlers that attach their routes to a group.
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts a set of registrars under a common base path.
type Router struct {
	engine *gin.Engine
	base   string
	regs   []Registrar
}

// Option configures a Router.
type Option func(*Router)

// WithBasePath overrides the mount point for all registered routes.
func WithBasePath(path string) Option {
	return func(r *Router) {
		r.base = path
	}
}

// WithAPIVersion mounts the routes under /api/<version>.
func WithAPIVersion(version string) Option {
	return func(r *Router) {
		r.base = "/api/" + version
	}
}

// New creates a Router mounted at /api/v1 unless overridden by options.
func New(engine *gin.Engine, opts ...Option) *Router {
	r := &Router{engine: engine, base: "/api/v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues registrars for mounting. It returns the Router so calls
// can be chained.
func (r *Router) Register(regs ...Registrar) *Router {
	r.regs = append(r.regs, regs...)
	return r
}

// Setup mounts every queued registrar and returns the base group.
func (r *Router) Setup() *gin.RouterGroup {
	group := r.engine.Group(r.base)
	for _, reg := range r.regs {
		reg.RegisterRoutes(group)
	}
	return group
}

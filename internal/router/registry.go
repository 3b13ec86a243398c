package router

import "github.com/gin-gonic/gin"

// Registry holds the two route trees of the portal: the JSON API under /api
// and the server-rendered pages at the root.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup
	Pages  *gin.RouterGroup

	apiMiddlewares  []gin.HandlerFunc
	pageMiddlewares []gin.HandlerFunc
	modules         []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api"), Pages: engine.Group("/")}
}

// Use adds middleware to the API group.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.apiMiddlewares = append(r.apiMiddlewares, mw...)
}

// UsePages adds middleware to the page group.
func (r *Registry) UsePages(mw ...gin.HandlerFunc) {
	r.pageMiddlewares = append(r.pageMiddlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.apiMiddlewares) > 0 {
		r.API.Use(r.apiMiddlewares...)
	}
	if len(r.pageMiddlewares) > 0 {
		r.Pages.Use(r.pageMiddlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API, r.Pages)
	}
}

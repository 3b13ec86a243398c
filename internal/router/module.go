package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that registers its JSON routes on api (/api)
// and its browser routes on pages (/).
type Module interface {
	Register(api, pages *gin.RouterGroup)
}

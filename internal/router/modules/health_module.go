package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
)

// HealthModule serves the liveness probe and, when enabled, expvar metrics.
type HealthModule struct {
	Handler *handlers.HealthHandler
	Debug   bool
}

func (m *HealthModule) Register(api, pages *gin.RouterGroup) {
	pages.GET("/healthz", m.Handler.Live)
	if m.Debug {
		pages.GET("/debug/vars", limit(120, time.Minute, middleware.KeyByIP()), gin.WrapH(expvar.Handler()))
	}
}

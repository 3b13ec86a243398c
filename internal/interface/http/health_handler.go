package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

type HealthHandler struct {
	Redis   *redis.Client
	Started time.Time
}

func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Redis: rdb, Started: time.Now()}
}

// Live GET /healthz. Redis is reported but does not fail the probe: the cache fails open.
func (h *HealthHandler) Live(c *gin.Context) {
	cache := "disabled"
	if h.Redis != nil {
		cache = "ok"
		if err := helpers.PingRedis(c.Request.Context(), h.Redis, time.Second); err != nil {
			cache = "unreachable"
		}
	}
	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"cache":  cache,
		"uptime": time.Since(h.Started).Round(time.Second).String(),
	}, "alive", nil)
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/qos-portal/internal/container"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
)

// limit builds a Redis rate limiter, or a pass-through when limiting is off.
// Health checks and internal callers are exempt.
func limit(n int, window time.Duration, key middleware.KeyFunc) gin.HandlerFunc {
	return limiter(n, window, key, middleware.AnyAllow(middleware.AllowPrivateIP(), middleware.AllowPaths("/healthz")))
}

// strictLimit exempts nobody. Used where a guessed password or OTP is at stake.
func strictLimit(n int, window time.Duration, key middleware.KeyFunc) gin.HandlerFunc {
	return limiter(n, window, key, nil)
}

func limiter(n int, window time.Duration, key middleware.KeyFunc, allow middleware.AllowFunc) gin.HandlerFunc {
	rdb := container.GetRedis()
	if cfg := container.GetConfig(); cfg != nil && !cfg.RateLimitEnabled {
		rdb = nil
	}
	return middleware.RateLimit(rdb, n, window, key, allow)
}

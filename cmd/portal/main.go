package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/config"
	"github.com/oksasatya/qos-portal/internal/container"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
	"github.com/oksasatya/qos-portal/internal/router"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/querycache"
	"github.com/oksasatya/qos-portal/pkg/validation"
	"github.com/oksasatya/qos-portal/web"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis backs the query cache and rate limits. Both degrade without it.
	rdb := connectRedis(ctx, cfg, logger)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.BackendAPIURL,
		Timeout: cfg.BackendTimeout,
		Tokens:  apiclient.ContextStore{},
		Mode:    apiclient.ModeServer,
		Logger:  logger,
	})

	var cache *querycache.Client
	if cfg.CacheEnabled {
		var backend querycache.Backend = querycache.NewMemoryBackend()
		if rdb != nil {
			backend = querycache.NewRedisBackend(rdb)
		}
		cache = querycache.New(backend, querycache.Options{
			Prefix:    cfg.AppName + ":query",
			StaleTime: cfg.CacheStaleTime,
			Scope: func(ctx context.Context) string {
				return helpers.HashToken(apiclient.SessionToken(ctx))
			},
			Logger: logger,
		})
	}

	// Provide singletons to the container for module wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetAPIClient(api)
	container.SetQueryCache(cache)
	container.SetCookies(helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure, cfg.SessionMaxAge))

	// Gin engine and global middleware
	r := gin.New()
	// gin trusts every proxy unless told otherwise; ClientIP must not follow spoofed headers
	if err := r.SetTrustedProxies(cfg.TrustedProxies()); err != nil {
		logger.Fatalf("trusted proxies: %v", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(cfg.TrustedProxies()...))
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = []string{cfg.PublicURL}
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.IsDevelopment() {
		r.Use(gin.Logger())
	}
	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatalf("templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "backend": cfg.BackendAPIURL}).Info("portal starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// connectRedis returns nil when Redis is unreachable; callers fall back to
// in-process caching and unlimited requests.
func connectRedis(ctx context.Context, cfg *config.Config, logger *logrus.Logger) *redis.Client {
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := helpers.PingRedis(ctx, rdb, 2*time.Second); err != nil {
		helpers.LogError(logger, "redis unreachable, continuing without it", err, logrus.Fields{"addr": cfg.RedisAddr})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

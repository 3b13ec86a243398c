package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables.
// Defaults suit local development.
type Config struct {
	AppName string `mapstructure:"APP_NAME"`
	Env     string `mapstructure:"APP_ENV"` // development, staging, production
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	// Remote QOS backend
	BackendAPIURL  string        `mapstructure:"BACKEND_API_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	// Redis (query cache and rate limits)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Query cache
	CacheEnabled   bool          `mapstructure:"CACHE_ENABLED"`
	CacheStaleTime time.Duration `mapstructure:"CACHE_STALE_TIME"`

	// Session cookie
	CookieDomain  string        `mapstructure:"COOKIE_DOMAIN"`
	CookieSecure  bool          `mapstructure:"COOKIE_SECURE"`
	SessionMaxAge time.Duration `mapstructure:"SESSION_MAX_AGE"`

	// CORS
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma-separated

	// Reverse proxies whose forwarding headers are believed (IPs or CIDRs, comma-separated).
	// Empty means client IPs come from the TCP peer only.
	TrustedProxiesCSV string `mapstructure:"TRUSTED_PROXIES"`

	// Public origin of the portal, used for absolute links
	PublicURL string `mapstructure:"PUBLIC_URL"`

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool `mapstructure:"HTTP_LOG_ENABLED"`

	// Redis-backed rate limiting toggle
	RateLimitEnabled bool `mapstructure:"RATE_LIMIT_ENABLED"`
}

var defaults = map[string]any{
	"APP_NAME":             "qos-portal",
	"APP_ENV":              "development",
	"PORT":                 "8080",
	"GIN_MODE":             "release",
	"BACKEND_API_URL":      "http://localhost:3000/api",
	"BACKEND_TIMEOUT":      "15s",
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"CACHE_ENABLED":        true,
	"CACHE_STALE_TIME":     "30s",
	"COOKIE_DOMAIN":        "",
	"COOKIE_SECURE":        false,
	"SESSION_MAX_AGE":      "168h",
	"CORS_ALLOWED_ORIGINS": "",
	"TRUSTED_PROXIES":      "",
	"PUBLIC_URL":           "http://localhost:8080",
	"HTTP_LOG_ENABLED":     false,
	"RATE_LIMIT_ENABLED":   true,
}

// Load reads configuration from the environment. Call godotenv first to pick up a .env file.
func Load() (*Config, error) {
	for k, v := range defaults {
		viper.SetDefault(k, v)
		// AutomaticEnv alone does not surface keys to Unmarshal
		_ = viper.BindEnv(k)
	}
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BackendAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_API_URL must be an absolute URL, got %q", c.BackendAPIURL)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive, got %s", c.BackendTimeout)
	}
	if c.Env == "production" && !c.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true in production")
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string { return splitCSV(c.CORSAllowedOrigins) }

// TrustedProxies returns the proxy IPs and CIDRs as slice
func (c *Config) TrustedProxies() []string { return splitCSV(c.TrustedProxiesCSV) }

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

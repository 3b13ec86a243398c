package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/config"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	apiClient   *apiclient.Client
	queryCache  *querycache.Client
	cookies     *helpers.Manager
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetRedis(r *redis.Client)           { redisClient = r }
func GetRedis() *redis.Client            { return redisClient }
func SetAPIClient(c *apiclient.Client)   { apiClient = c }
func GetAPIClient() *apiclient.Client    { return apiClient }
func SetQueryCache(c *querycache.Client) { queryCache = c }
func GetQueryCache() *querycache.Client  { return queryCache }
func SetCookies(m *helpers.Manager)      { cookies = m }
func GetCookies() *helpers.Manager {
	if cookies != nil {
		return cookies
	}
	return helpers.NewCookie("", false, 0)
}

// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medagenda/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-progress registration sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient is the durable store for issued tokens and profiles.
	AuthCacheClient *redis.Client
	// CatalogCacheClient caches the platform catalogs.
	CatalogCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitSessionCache initializes the Redis client for registration sessions.
func InitSessionCache() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
}

// GetSessionCacheClient returns the registration session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitAuthCache initializes the Redis client for the auth store.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
}

// GetAuthCacheClient returns the Redis client for the auth store.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitCatalogCache initializes the Redis client for catalog caching.
func InitCatalogCache() {
	CatalogCacheClient = newRedisClient(config.AppConfig.RedisCatalogDB)
}

// GetCatalogCacheClient returns the catalog cache client.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		InitCatalogCache()
	}
	return CatalogCacheClient
}

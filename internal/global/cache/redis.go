package cache

import (
	"context"
	"time"

	"sahabat3t-backend/config"

	"github.com/redis/go-redis/v9"
)

// Client is nil when Redis is not configured; callers treat that as a miss.
var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// GetString fetches a cached value; ok is false on miss, error, or when the
// cache is disabled.
func GetString(ctx context.Context, key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetString stores a value with a TTL; failures are swallowed, the cache is
// best effort.
func SetString(ctx context.Context, key, val string, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(ctx, key, val, ttl)
}

package cache

import (
	"github.com/redis/go-redis/v9"
	"github.com/vimco/vimco-api/internal/config"
)

// New returns nil when no address is configured; callers treat a nil client as "no cache".
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

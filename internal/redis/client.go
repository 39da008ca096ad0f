package redisdb

import (
	"github.com/redis/go-redis/v9"
	"expert-chat/internal/config"
)

// NewClient returns nil when no address is configured; callers treat a nil
// client as "stats disabled".
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

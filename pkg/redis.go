package pkg

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/edublog/blog-service/internal/config"
)

// NewRedisClient builds a Redis client from the configured URL.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

package database

import (
	"context"
	"fmt"
	"time"

	appconfig "servicescale/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis initializes a Redis client and verifies it with a ping.
func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"orderbridge/internal/config"
	"orderbridge/internal/utils"
)

// NewRedis opens and pings a redis client.
func NewRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	utils.GetLogger().WithField("addr", cfg.RedisAddr()).Info("redis connected")
	return client, nil
}

package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and fails fast when it does not answer PING.
func NewRedisClient(ctx context.Context, cfg Config, logger *logging.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger.Info("connecting to redis", "addr", cfg.Addr)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("redis connected")
	return client, nil
}

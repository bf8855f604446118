package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings of the session cache.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedis creates a Redis client and verifies the server answers.
func NewRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Pinger adapts a Redis client to the health check interface.
type Pinger struct {
	Client *redis.Client
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}

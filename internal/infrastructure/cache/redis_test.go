package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewRedis(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "ping redis")
}

func TestPinger_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	assert.Error(t, Pinger{Client: client}.Ping(context.Background()))
}

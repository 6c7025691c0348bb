// Package cache provides the Redis-backed byte cache used for provider
// responses.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/filmz/filmz/internal/logger"
)

// NewRedisClient parses url and pings the server. Callers treat an error as
// "run without a cache".
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, errors.New("redis url is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCache stores values under a key prefix. A nil client turns every
// call into a miss.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	logger *logger.Logger
}

// NewRedisCache wraps client.
func NewRedisCache(client redis.UniversalClient, prefix string, log *logger.Logger) *RedisCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{client: client, prefix: prefix, logger: log}
}

// Get returns the cached value for key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache: get failed")
		}
		return nil, false
	}
	return val, true
}

// Set stores value for ttl. Failures are logged and otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache: set failed")
	}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

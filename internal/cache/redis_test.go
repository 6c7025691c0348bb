package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCacheIsAlwaysAMiss(t *testing.T) {
	var c *RedisCache
	c.Set(context.Background(), "k", []byte("v"), time.Minute)
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)

	empty := NewRedisCache(nil, "filmz:", nil)
	empty.Set(context.Background(), "k", []byte("v"), time.Minute)
	_, ok = empty.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "")
	require.Error(t, err)

	_, err = NewRedisClient(context.Background(), "not-a-redis-url")
	require.Error(t, err)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not provided")
	}
	client, err := NewRedisClient(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisCache(client, "filmz-test:"+uuid.NewString()+":", nil)
	ctx := context.Background()

	_, ok := c.Get(ctx, "discover")
	assert.False(t, ok)

	c.Set(ctx, "discover", []byte(`{"page":1}`), time.Minute)
	got, ok := c.Get(ctx, "discover")
	require.True(t, ok)
	assert.JSONEq(t, `{"page":1}`, string(got))

	ttl, err := client.TTL(ctx, c.key("discover")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable server; set REDIS_ADDRESS to run.
func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_ADDRESS not set")
	}

	cache := NewRedisCache(addr)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Ping(ctx))

	key := "test:" + uuid.NewString()
	require.NoError(t, cache.Set(ctx, key, "payload", time.Minute))

	val, ok := cache.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "payload", val)

	_, ok = cache.Get(ctx, key+":missing")
	assert.False(t, ok)
}

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	cache := NewRedisCache("127.0.0.1:1")
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, ok := cache.Get(ctx, "anything")
	assert.False(t, ok)
}

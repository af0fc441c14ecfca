package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type price struct {
	Usd float64 `json:"usd"`
}

func TestMemoryCache(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(func() time.Time { return now })
	ctx := context.Background()

	var got price
	found, err := cache.Get(ctx, "btc", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "btc", price{Usd: 100500}, time.Minute))

	found, err = cache.Get(ctx, "btc", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 100500.0, got.Usd)

	now = now.Add(59 * time.Second)
	found, _ = cache.Get(ctx, "btc", &got)
	assert.True(t, found, "value must live until ttl")

	now = now.Add(time.Second)
	found, _ = cache.Get(ctx, "btc", &got)
	assert.False(t, found, "value must expire after ttl")
}

func TestNewCache_Memory(t *testing.T) {
	cache := NewCache("")
	_, ok := cache.(*MemoryCache)
	assert.True(t, ok, "expected memory cache without redis address, got %T", cache)
	assert.NoError(t, cache.Close())
}

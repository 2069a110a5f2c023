package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	store := NewInMemoryIdempotencyStore(time.Hour)
	store.now = clock.Now
	t.Cleanup(func() { _ = store.Close() })

	t.Run("first mark wins", func(t *testing.T) {
		ok, err := store.MarkProcessed(ctx, "k1", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.MarkProcessed(ctx, "k1", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		seen, err := store.IsProcessed(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("expired key can be marked again", func(t *testing.T) {
		_, _ = store.MarkProcessed(ctx, "k2", time.Minute)
		clock.Advance(2 * time.Minute)

		seen, _ := store.IsProcessed(ctx, "k2")
		assert.False(t, seen)

		ok, err := store.MarkProcessed(ctx, "k2", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("sweep drops expired keys", func(t *testing.T) {
		_, _ = store.MarkProcessed(ctx, "k3", time.Second)
		clock.Advance(time.Hour)
		store.sweep()
		assert.Equal(t, 0, store.Len())
	})

	t.Run("concurrent marks admit exactly one", func(t *testing.T) {
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ok, _ := store.MarkProcessed(ctx, "race", time.Minute); ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := NewInMemoryIdempotencyStore(time.Millisecond)
		assert.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}

func TestMemoryTextCache(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryTextCache()
	c.now = clock.Now

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "12.970000,77.590000", "Bengaluru", time.Hour))
	v, found, err := c.Get(ctx, "12.970000,77.590000")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Bengaluru", v)

	clock.Advance(2 * time.Hour)
	_, found, _ = c.Get(ctx, "12.970000,77.590000")
	assert.False(t, found)
}

func TestFactories(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		s := NewIdempotencyStore(config.IdempotencyConfig{Backend: "memory"}, nil, zap.NewNop())
		t.Cleanup(func() { _ = s.Close() })
		assert.IsType(t, &InMemoryIdempotencyStore{}, s)
	})

	t.Run("redis backend without client falls back", func(t *testing.T) {
		s := NewIdempotencyStore(config.IdempotencyConfig{Backend: "redis"}, nil, zap.NewNop())
		t.Cleanup(func() { _ = s.Close() })
		assert.IsType(t, &InMemoryIdempotencyStore{}, s)
	})

	t.Run("text cache without client is in memory", func(t *testing.T) {
		assert.IsType(t, &MemoryTextCache{}, NewTextCache(nil, "geo:"))
	})
}

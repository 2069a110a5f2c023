package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TextCache stores short string values under a key with a TTL.
// Get reports found=false on a miss.
type TextCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisTextCache implements TextCache on Redis strings
type RedisTextCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisTextCache creates a Redis-backed TextCache
func NewRedisTextCache(client redis.UniversalClient, keyPrefix string) *RedisTextCache {
	return &RedisTextCache{client: client, keyPrefix: keyPrefix}
}

// Get implements TextCache
func (c *RedisTextCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %q: %w", key, err)
	}
	return v, true, nil
}

// Set implements TextCache
func (c *RedisTextCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

type textEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTextCache implements TextCache in process; expired entries are
// dropped on read.
type MemoryTextCache struct {
	mu      sync.Mutex
	entries map[string]textEntry
	now     func() time.Time
}

// NewMemoryTextCache creates an empty MemoryTextCache
func NewMemoryTextCache() *MemoryTextCache {
	return &MemoryTextCache{entries: make(map[string]textEntry), now: time.Now}
}

// Get implements TextCache
func (c *MemoryTextCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

// Set implements TextCache
func (c *MemoryTextCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = textEntry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

var (
	_ TextCache = (*RedisTextCache)(nil)
	_ TextCache = (*MemoryTextCache)(nil)
)

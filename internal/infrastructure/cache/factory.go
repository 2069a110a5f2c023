package cache

import (
	"github.com/redis/go-redis/v9"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore picks the backend named in cfg. A nil client with the
// redis backend falls back to memory with a warning.
func NewIdempotencyStore(cfg config.IdempotencyConfig, client redis.UniversalClient, logger *zap.Logger) shared.IdempotencyStore {
	if cfg.Backend == "redis" {
		if client != nil {
			logger.Info("Using Redis idempotency store")
			return NewRedisIdempotencyStore(client, "")
		}
		logger.Warn("Redis idempotency store requested without a Redis client, falling back to memory")
	}
	logger.Info("Using in-memory idempotency store")
	return NewInMemoryIdempotencyStore(0)
}

// NewTextCache returns a Redis cache when a client is available, otherwise memory
func NewTextCache(client redis.UniversalClient, keyPrefix string) TextCache {
	if client != nil {
		return NewRedisTextCache(client, keyPrefix)
	}
	return NewMemoryTextCache()
}

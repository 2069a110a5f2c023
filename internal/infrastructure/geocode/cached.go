package geocode

import (
	"context"
	"time"

	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// coordinates are rounded to ~11m before keying the cache
const cachePrecision = 4

// CachedResolver memoizes reverse lookups. Forward lookups pass through.
type CachedResolver struct {
	next   Resolver
	cache  cache.TextCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedResolver wraps next with a cache
func NewCachedResolver(next Resolver, c cache.TextCache, ttl time.Duration, logger *zap.Logger) *CachedResolver {
	return &CachedResolver{next: next, cache: c, ttl: ttl, logger: logger}
}

// Reverse implements Resolver. Cache errors degrade to a direct lookup.
func (r *CachedResolver) Reverse(ctx context.Context, loc partner.Location) (string, error) {
	key := loc.Rounded(cachePrecision).String()

	if v, found, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return v, nil
	}

	addr, err := r.next.Reverse(ctx, loc)
	if err != nil {
		return "", err
	}
	if err := r.cache.Set(ctx, key, addr, r.ttl); err != nil {
		r.logger.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
	return addr, nil
}

// Forward implements Resolver
func (r *CachedResolver) Forward(ctx context.Context, address string) (partner.Location, error) {
	return r.next.Forward(ctx, address)
}

var _ Resolver = (*CachedResolver)(nil)

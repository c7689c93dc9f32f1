package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"grasswren-api/internal/models"
	"grasswren-api/internal/observability"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Resolver resolves a postcode to a location, nil when unresolvable.
type Resolver interface {
	Resolve(ctx context.Context, postcode string) *models.Location
}

// Store is the subset of redis.Cmdable used by the cache.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver is a read-through Redis cache in front of a Resolver.
// Only successful resolutions are stored.
type CachedResolver struct {
	inner   Resolver
	store   Store
	ttl     time.Duration
	metrics *observability.Metrics
}

// NewCachedResolver wraps inner with a cache backed by store.
func NewCachedResolver(inner Resolver, store Store, ttl time.Duration, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{inner: inner, store: store, ttl: ttl, metrics: metrics}
}

// cacheKey normalises surrounding whitespace and case so equivalent
// postcodes share one entry.
func cacheKey(postcode string) string {
	return "geocode:" + strings.ToUpper(strings.TrimSpace(postcode))
}

// Resolve serves from the cache when possible. Cache failures fall through
// to the wrapped resolver.
func (c *CachedResolver) Resolve(ctx context.Context, postcode string) *models.Location {
	key := cacheKey(postcode)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var loc models.Location
		if jsonErr := json.Unmarshal(raw, &loc); jsonErr == nil {
			c.metrics.ObserveCache("hit")
			return &loc
		}
		log.Ctx(ctx).Warn().Str("key", key).Msg("discarding undecodable geocode cache entry")
		c.metrics.ObserveCache("error")
	case errors.Is(err, redis.Nil):
		c.metrics.ObserveCache("miss")
	default:
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("geocode cache read failed")
		c.metrics.ObserveCache("error")
	}

	loc := c.inner.Resolve(ctx, postcode)
	if loc == nil {
		return nil
	}

	encoded, err := json.Marshal(loc)
	if err != nil {
		return loc
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("geocode cache write failed")
	}

	return loc
}

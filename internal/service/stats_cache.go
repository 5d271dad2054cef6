package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/pkg/cache"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/brevetti-digital/backend/pkg/redis"
)

// StatsCache caches the statistics endpoints. Backed by Redis when
// available, otherwise by a process-local TTL cache. Entries are stored
// as JSON so both backends behave identically.
type StatsCache struct {
	redis  *redis.Client // nil when Redis is disabled
	memory *cache.Cache
	ttl    time.Duration
}

func NewStatsCache(redisClient *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		redis:  redisClient,
		memory: cache.NewCache(),
		ttl:    ttl,
	}
}

// Get loads a cached entry into dest; false on miss. Cache failures are
// treated as misses: statistics are always recomputable.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) bool {
	var raw []byte

	if c.redis != nil {
		data, err := c.redis.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, redis.ErrCacheMiss) {
				logger.WarnWithContext(ctx, "Stats cache read failed").
					String("key", key).
					Err(err).
					Log()
			}
			return false
		}
		raw = data
	} else {
		value, found := c.memory.Get(key)
		if !found {
			return false
		}
		raw = value.([]byte)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.WarnWithContext(ctx, "Stats cache entry is corrupt").
			String("key", key).
			Err(err).
			Log()
		return false
	}

	return true
}

// Set stores an entry for the configured TTL
func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to marshal stats cache entry").
			String("key", key).
			Err(err).
			Log()
		return
	}

	if c.redis != nil {
		if err := c.redis.Set(ctx, key, raw, c.ttl); err != nil {
			logger.WarnWithContext(ctx, "Stats cache write failed").
				String("key", key).
				Err(err).
				Log()
		}
		return
	}

	c.memory.Set(key, raw, c.ttl)
}

// Invalidate drops every statistics entry. Called after any patent or
// holder write so the aggregates never serve stale data past a mutation.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c.redis != nil {
		if err := c.redis.DeleteByPattern(ctx, constants.CacheKeyStatsPattern); err != nil {
			logger.WarnWithContext(ctx, "Stats cache invalidation failed").Err(err).Log()
		}
		return
	}

	c.memory.DeletePrefix(constants.CacheKeyPrefix + "stats:")
}

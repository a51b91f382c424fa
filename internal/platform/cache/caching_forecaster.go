// Package cache provides caching implementations for forecast interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"energy_backend/internal/feature/forecast/domain/entity"
)

// Forecaster is the interface being decorated.
type Forecaster interface {
	Forecast(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error)
}

// CachingForecaster decorates a Forecaster with Redis caching. It implements
// the decorator pattern, transparently adding caching without modifying the
// underlying forecaster.
//
// Cache keys carry the UTC date and entries live until the next UTC midnight:
// within a day the fitted model only changes on a data reload, which
// invalidates the series' entries explicitly.
type CachingForecaster struct {
	inner     Forecaster
	rdb       *redis.Client
	namespace string
}

// NewCachingForecaster decorates a Forecaster with Redis caching.
// If namespace is empty, it uses "forecast".
func NewCachingForecaster(rdb *redis.Client, inner Forecaster, namespace string) *CachingForecaster {
	if namespace == "" {
		namespace = "forecast"
	}
	return &CachingForecaster{inner: inner, rdb: rdb, namespace: namespace}
}

// Forecast checks the cache first, then falls back to the fitted model.
func (c *CachingForecaster) Forecast(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Forecast(ctx, series, days)
	}

	key := c.cacheKey(series, days)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ForecastPoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the fitted model
	out, err := c.inner.Forecast(ctx, series, days)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, TimeUntilMidnightUTC()).Err()
	}

	return out, nil
}

// Invalidate drops every cached horizon for a series, typically after the
// underlying data was reloaded and the model refitted.
func (c *CachingForecaster) Invalidate(ctx context.Context, series string) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.cacheKeyPrefix(series)+"*")
}

// cacheKey generates a cache key for a specific query.
func (c *CachingForecaster) cacheKey(series string, days int) string {
	return fmt.Sprintf("%s%d:%s", c.cacheKeyPrefix(series), days, time.Now().UTC().Format("2006-01-02"))
}

// cacheKeyPrefix generates a prefix for invalidating a series' cache entries.
func (c *CachingForecaster) cacheKeyPrefix(series string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(series))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingForecaster) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

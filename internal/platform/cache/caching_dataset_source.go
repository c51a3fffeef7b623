// Package cache provides caching implementations for dataset sources.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/usecase"
)

// CachingDatasetSource decorates a DatasetSource with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying source.
type CachingDatasetSource struct {
	inner     usecase.DatasetSource
	rdb       *redis.Client
	ttl       func() time.Duration
	namespace string
	// 同じキーへの同時ミスは1回の取得にまとめる
	group singleflight.Group
}

var _ usecase.DatasetSource = (*CachingDatasetSource)(nil)

// Option configures a CachingDatasetSource.
type Option func(*CachingDatasetSource)

// WithDailyRefresh expires entries at the next occurrence of hour:00 in loc
// instead of after a fixed TTL.
func WithDailyRefresh(hour int, loc *time.Location) Option {
	return func(c *CachingDatasetSource) {
		c.ttl = func() time.Duration { return TimeUntilNextRefresh(time.Now(), hour, loc) }
	}
}

// NewCachingDatasetSource decorates a DatasetSource with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "datasets".
func NewCachingDatasetSource(rdb *redis.Client, ttl time.Duration, inner usecase.DatasetSource, namespace string, opts ...Option) *CachingDatasetSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "datasets"
	}
	c := &CachingDatasetSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       func() time.Duration { return ttl },
		namespace: namespace,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the name of the decorated source.
func (c *CachingDatasetSource) Name() string {
	return c.inner.Name()
}

// Historical retrieves a price series, checking cache first then falling back to the inner source.
func (c *CachingDatasetSource) Historical(ctx context.Context, symbol string) ([]entity.HistoricalPricePoint, error) {
	return cached(ctx, c, c.cacheKey("historical", symbol), func(ctx context.Context) ([]entity.HistoricalPricePoint, error) {
		return c.inner.Historical(ctx, symbol)
	})
}

// Prediction retrieves a prediction series, checking cache first then falling back to the inner source.
func (c *CachingDatasetSource) Prediction(ctx context.Context, symbol string) ([]entity.PredictionPoint, error) {
	return cached(ctx, c, c.cacheKey("prediction", symbol), func(ctx context.Context) ([]entity.PredictionPoint, error) {
		return c.inner.Prediction(ctx, symbol)
	})
}

func cached[T any](ctx context.Context, c *CachingDatasetSource, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	// 1) Check cache (bypassed if Redis is not configured)
	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
			var out []T
			if err := json.Unmarshal(b, &out); err == nil {
				return out, nil
			}
			// Delete corrupted cache entry
			_ = c.rdb.Del(ctx, key).Err()
		}
	}

	// 2) Fallback to the inner source; errors are never cached
	v, err, shared := c.group.Do(key, func() (any, error) {
		out, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if len(out) > 0 {
			c.store(ctx, key, out)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	out := v.([]T)
	if shared {
		// 呼び出し元がソートや切り詰めを行うため、共有された結果は複製して返す
		out = slices.Clone(out)
	}
	return out, nil
}

// store writes a series to the cache (best effort).
// NaN values cannot be encoded, such series are served uncached.
func (c *CachingDatasetSource) store(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		slog.Debug("dataset not cacheable", "key", key, "error", err)
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl()).Err()
}

// Purge deletes every cached dataset in the namespace.
func (c *CachingDatasetSource) Purge(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates a cache key for a dataset kind and symbol.
func (c *CachingDatasetSource) cacheKey(kind, symbol string) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		kind,
		safe(strings.ToUpper(symbol)),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDatasetSource) deleteByPattern(ctx context.Context, pattern string) error {
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

// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/feature/datasets/adapters/remote"
	"stock_dashboard/internal/feature/datasets/usecase"
	"stock_dashboard/internal/platform/cache"
	"stock_dashboard/internal/platform/externalapi/staticdata"
	infrahttp "stock_dashboard/internal/platform/http"
	"stock_dashboard/internal/platform/metrics"
)

// NewStaticDataClient creates a fully configured static data host client with HTTP client.
func NewStaticDataClient(cfg staticdata.Config) *staticdata.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return staticdata.NewClient(cfg, httpClient)
}

// NewDefaultSource creates the remote dataset source wrapped with Redis caching.
// If rdb is nil the cache is bypassed and every read goes to the data host.
// Entries expire at the configured daily refresh hour.
func NewDefaultSource(cfg *config.Config, fetcher remote.Fetcher, rdb *redis.Client) *cache.CachingDatasetSource {
	src := remote.NewSource(fetcher)
	return cache.NewCachingDatasetSource(rdb, 0, src, cfg.Cache.Namespace,
		cache.WithDailyRefresh(cfg.Cache.RefreshHour, cfg.Location()))
}

// NewDatasetStore creates the store that resolves custom uploads first and
// the default source second, counting resolutions in m.
func NewDatasetStore(defaults usecase.DatasetSource, m *metrics.Metrics) *usecase.DatasetStore {
	return usecase.NewDatasetStore([]usecase.DatasetSource{defaults}, usecase.WithObserver(m))
}

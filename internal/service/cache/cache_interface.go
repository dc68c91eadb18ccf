package cache

import "github.com/guttosm/quote-service/internal/domain/model"

// Cache defines the interface for pricing result cache operations.
type Cache interface {
	Get(key string) (model.PricingResult, bool)
	Set(key string, value model.PricingResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

// Package app provides service initialization.
package app

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/carrier"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/pricing"
	"github.com/guttosm/quote-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Estimator     *service.EstimateService
	Packer        service.Packer
	Quoter        service.Quoter
	CarrierClient *carrier.CachedClient
	ResultCache   *service.ShardedCache

	stopGauge chan struct{}
}

// InitializeServices initializes the pricing, packing and quote services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	components := &ServiceComponents{
		Packer:    service.NewFFDPacker(),
		stopGauge: make(chan struct{}),
	}

	var estimateOpts []service.EstimateOption
	if cfg.Cache.Size > 0 {
		components.ResultCache = service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
		estimateOpts = append(estimateOpts, service.WithCacheInterface(components.ResultCache))
		go components.reportCacheSize()
	}
	components.Estimator = service.NewEstimateService(estimateOpts...)

	// Carrier quote aggregation
	registry := carrier.NewRegistry()
	registry.Register(carrier.NewUPSProvider(cfg.Carriers.UPS))
	registry.Register(carrier.NewFedExProvider(cfg.Carriers.FedEx))
	registry.Register(carrier.NewUSPSProvider(cfg.Carriers.USPS))

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	clientCfg := carrier.DefaultClientConfig()
	if cfg.Redis.QuoteTTL > 0 {
		clientCfg.TTL = cfg.Redis.QuoteTTL
	}
	if cfg.Redis.MaxAttempts > 0 {
		clientCfg.MaxAttempts = cfg.Redis.MaxAttempts
	}
	if cfg.Redis.RetryBackoff > 0 {
		clientCfg.RetryBackoff = cfg.Redis.RetryBackoff
	}
	components.CarrierClient = carrier.NewCachedClient(rdb, clientCfg)

	aggregator := carrier.NewAggregator(registry, components.CarrierClient, cfg.Carriers.ProviderTimeout)
	components.Quoter = service.NewQuoteService(aggregator, pricing.NewPipeline(pricing.DefaultRegistry()))

	return components
}

// reportCacheSize keeps the cache size gauge in sync with the result cache.
func (c *ServiceComponents) reportCacheSize() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			metrics.CacheSize.Set(float64(c.ResultCache.Metrics().Size))
		case <-c.stopGauge:
			return
		}
	}
}

// Stop shuts down background service components.
func (c *ServiceComponents) Stop() {
	close(c.stopGauge)
	if c.ResultCache != nil {
		c.ResultCache.Stop()
	}
}

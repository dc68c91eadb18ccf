package carrier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
)

// ClientConfig configures the cached quote client.
type ClientConfig struct {
	// TTL is how long a provider response stays cached.
	TTL time.Duration
	// MaxAttempts is the total number of call attempts per provider.
	MaxAttempts int
	// RetryBackoff is the pause between attempts.
	RetryBackoff time.Duration
}

// DefaultClientConfig returns the default cached client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		TTL:          10 * time.Minute,
		MaxAttempts:  2,
		RetryBackoff: 150 * time.Millisecond,
	}
}

// CachedClient calls providers through a Redis response cache, a bounded
// retry loop, and a per-provider circuit breaker. Responses are keyed by
// provider id plus shipment fingerprint.
type CachedClient struct {
	rdb *redis.Client
	cfg ClientConfig

	mu       sync.Mutex
	breakers map[string]*circuitbreaker.CircuitBreaker
}

// NewCachedClient creates a cached quote client. A nil redis client disables
// caching; calls then always reach the provider.
func NewCachedClient(rdb *redis.Client, cfg ClientConfig) *CachedClient {
	def := DefaultClientConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = def.RetryBackoff
	}
	return &CachedClient{
		rdb:      rdb,
		cfg:      cfg,
		breakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// Quote returns the provider's quotes for the shipment, serving from cache
// when possible. On exhausted retries or an open circuit the last error is
// returned and no quotes are cached.
func (c *CachedClient) Quote(ctx context.Context, p Provider, shipment model.Shipment) ([]model.CarrierQuote, error) {
	key := quoteCacheKey(p.ID(), shipment)

	if quotes, ok := c.cacheGet(ctx, key); ok {
		return quotes, nil
	}

	breaker := c.breaker(p.ID())

	var quotes []model.CarrierQuote
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		start := time.Now()
		err := breaker.Execute(ctx, func() error {
			got, qerr := p.Quote(ctx, shipment)
			if qerr != nil {
				return qerr
			}
			quotes = got
			return nil
		})
		if err == nil {
			metrics.RecordProviderQuote(p.ID(), time.Since(start), "success")
			c.cacheSet(ctx, key, quotes)
			return quotes, nil
		}

		lastErr = err
		metrics.RecordProviderQuote(p.ID(), time.Since(start), "error")
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			// Retrying against an open circuit is pointless.
			break
		}
		if attempt < c.cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RetryBackoff):
			}
		}
	}

	log.Error().
		Err(lastErr).
		Str("provider", p.ID()).
		Int("attempts", c.cfg.MaxAttempts).
		Msg("Carrier quote request failed")
	return nil, lastErr
}

// BreakerStats returns the stats of every provider breaker created so far.
func (c *CachedClient) BreakerStats() []circuitbreaker.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]circuitbreaker.Stats, 0, len(c.breakers))
	for _, cb := range c.breakers {
		out = append(out, cb.GetStats())
	}
	return out
}

func (c *CachedClient) breaker(providerID string) *circuitbreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()
	cb, ok := c.breakers[providerID]
	if !ok {
		cb = circuitbreaker.New(circuitbreaker.DefaultConfig("carrier:" + providerID))
		c.breakers[providerID] = cb
	}
	return cb
}

func quoteCacheKey(providerID string, shipment model.Shipment) string {
	return "carrier:quotes:" + providerID + ":" + shipment.Fingerprint()
}

func (c *CachedClient) cacheGet(ctx context.Context, key string) ([]model.CarrierQuote, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("carrier_quotes", "get", "miss")
		return nil, false
	}
	if err != nil {
		metrics.RecordCacheOperation("carrier_quotes", "get", "error")
		log.Warn().Err(err).Str("key", key).Msg("Carrier quote cache read failed")
		return nil, false
	}

	var quotes []model.CarrierQuote
	if err := json.Unmarshal(raw, &quotes); err != nil {
		metrics.RecordCacheOperation("carrier_quotes", "get", "error")
		log.Warn().Err(err).Str("key", key).Msg("Carrier quote cache entry is corrupt")
		return nil, false
	}
	metrics.RecordCacheOperation("carrier_quotes", "get", "hit")
	return quotes, true
}

func (c *CachedClient) cacheSet(ctx context.Context, key string, quotes []model.CarrierQuote) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(quotes)
	if err != nil {
		metrics.RecordCacheOperation("carrier_quotes", "set", "error")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.cfg.TTL).Err(); err != nil {
		metrics.RecordCacheOperation("carrier_quotes", "set", "error")
		log.Warn().Err(err).Str("key", key).Msg("Carrier quote cache write failed")
		return
	}
	metrics.RecordCacheOperation("carrier_quotes", "set", "success")
}

package carrier

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// DefaultProviderTimeout bounds a single provider call.
const DefaultProviderTimeout = 5 * time.Second

// Aggregator fans a shipment out to every enabled provider and merges their
// quotes. Providers run concurrently; the merge is deterministic in
// registration order regardless of completion order.
type Aggregator struct {
	registry *Registry
	client   *CachedClient
	timeout  time.Duration
}

// NewAggregator creates an aggregator over the given registry and client.
// A non-positive timeout falls back to DefaultProviderTimeout.
func NewAggregator(registry *Registry, client *CachedClient, timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Aggregator{registry: registry, client: client, timeout: timeout}
}

// Collect gathers quotes from every enabled provider. Provider failures and
// timeouts degrade to zero quotes from that provider; the other providers'
// results are unaffected. All providers are awaited before merging, so a
// canceled context simply yields fewer quotes, never a partially merged
// result.
func (a *Aggregator) Collect(ctx context.Context, shipment model.Shipment) []model.CarrierQuote {
	providers := a.registry.Enabled()
	if len(providers) == 0 {
		return []model.CarrierQuote{}
	}

	results := make([][]model.CarrierQuote, len(providers))
	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()

			pctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			quotes, err := a.client.Quote(pctx, p, shipment)
			if err != nil {
				log.Warn().
					Err(err).
					Str("provider", p.ID()).
					Msg("Provider contributed no quotes")
				return
			}
			results[i] = quotes
		}(i, p)
	}
	wg.Wait()

	merged := make([]model.CarrierQuote, 0, 2*len(providers))
	for _, quotes := range results {
		merged = append(merged, quotes...)
	}
	return merged
}

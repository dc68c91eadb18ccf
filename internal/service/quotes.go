package service

import (
	"context"

	"github.com/guttosm/quote-service/internal/carrier"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/pricing"
)

// Quoter defines the carrier quoting operations.
type Quoter interface {
	Quotes(ctx context.Context, shipment model.Shipment, cfg model.PricingConfig) []model.CarrierQuote
}

// QuoteService aggregates carrier quotes and runs them through the pricing
// rule pipeline, returning the adjusted quotes cheapest first.
type QuoteService struct {
	aggregator *carrier.Aggregator
	pipeline   *pricing.Pipeline
}

// NewQuoteService creates a quote service over the aggregator and pipeline.
func NewQuoteService(aggregator *carrier.Aggregator, pipeline *pricing.Pipeline) *QuoteService {
	return &QuoteService{aggregator: aggregator, pipeline: pipeline}
}

// Quotes collects quotes from all enabled providers, applies the rule
// pipeline under the config snapshot and ranks the result by amount.
// Provider failures degrade to fewer quotes, never an error.
func (s *QuoteService) Quotes(ctx context.Context, shipment model.Shipment, cfg model.PricingConfig) []model.CarrierQuote {
	quotes := s.aggregator.Collect(ctx, shipment)
	adjusted := s.pipeline.ApplyAll(quotes, pricing.ContextFromConfig(cfg))
	model.SortQuotesByAmount(adjusted)
	return adjusted
}

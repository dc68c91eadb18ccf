// Package carrier implements the carrier rate providers and the aggregator
// that fans out quote requests to them. Providers are registered explicitly
// at startup; registration order defines the merge order of their quotes.
package carrier

import (
	"context"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// Provider is a single carrier rate source.
type Provider interface {
	// ID is the stable provider identifier (e.g. "ups").
	ID() string
	// Enabled reports whether the provider is configured with credentials.
	// Disabled providers are skipped by the aggregator.
	Enabled() bool
	// Quote returns the provider's rates for a shipment. Implementations
	// must be idempotent and return an empty list rather than an error when
	// inputs are merely insufficient.
	Quote(ctx context.Context, shipment model.Shipment) ([]model.CarrierQuote, error)
}

// Registry holds providers in registration order.
type Registry struct {
	providers []Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a provider. Registration order defines merge order.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Providers returns all registered providers in registration order.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Enabled returns the enabled providers in registration order.
func (r *Registry) Enabled() []Provider {
	out := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Enabled() {
			out = append(out, p)
		}
	}
	return out
}

// Package pricing implements the ordered rule pipeline that adjusts
// aggregated carrier quotes. Rules are registered explicitly at startup
// instead of being discovered, and are applied ascending by weight.
package pricing

import (
	"sort"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// Context carries the configuration flags rules read. One context is built
// per pipeline run from the pricing configuration snapshot.
type Context struct {
	// ZoneBase is the flat zone charge added by the zone_base rule when > 0
	ZoneBase float64
	// PeakSurcharge is the flat peak charge added during peak periods
	PeakSurcharge float64
	// IsPeak gates the peak surcharge rule
	IsPeak bool
}

// ContextFromConfig builds a rule context from a pricing config snapshot.
func ContextFromConfig(cfg model.PricingConfig) Context {
	return Context{
		ZoneBase:      cfg.ZoneBase,
		PeakSurcharge: cfg.PeakSurcharge,
		IsPeak:        cfg.IsPeak,
	}
}

// Rule adjusts a quote list. Apply must return a new list and must not
// mutate its input; amounts must never be driven below zero.
type Rule interface {
	// ID is the stable rule identifier used for metadata keys.
	ID() string
	// Weight orders rule application; lower weights run first.
	Weight() int
	// Apply transforms the quotes for the given context.
	Apply(quotes []model.CarrierQuote, ctx Context) []model.CarrierQuote
}

// Registry holds registered rules in registration order.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a rule. Registration order breaks weight ties.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns the registered rules sorted ascending by weight. The sort is
// stable so equal weights keep registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight() < out[j].Weight()
	})
	return out
}

// DefaultRegistry returns a registry with the two standard rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ZoneBaseRule{})
	r.Register(PeakSurchargeRule{})
	return r
}

package pricing

import "github.com/guttosm/quote-service/internal/domain/model"

// ZoneBaseRule adds a flat zone charge to every quote. It runs early
// (negative weight) so later percentage-style rules see the adjusted base.
type ZoneBaseRule struct{}

// ID returns the rule identifier.
func (ZoneBaseRule) ID() string { return "zone_base" }

// Weight orders this rule before the standard surcharge rules.
func (ZoneBaseRule) Weight() int { return -10 }

// Apply adds the configured zone base to each quote and records the
// contribution in quote metadata. A non-positive zone base is a no-op.
func (ZoneBaseRule) Apply(quotes []model.CarrierQuote, ctx Context) []model.CarrierQuote {
	if ctx.ZoneBase <= 0 {
		return quotes
	}

	out := model.CloneQuotes(quotes)
	for i := range out {
		out[i].Amount += ctx.ZoneBase
		if out[i].Amount < 0 {
			out[i].Amount = 0
		}
		if out[i].Metadata == nil {
			out[i].Metadata = make(map[string]interface{})
		}
		out[i].Metadata["zone_base_applied"] = ctx.ZoneBase
	}
	return out
}

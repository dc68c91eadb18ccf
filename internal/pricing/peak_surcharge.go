package pricing

import "github.com/guttosm/quote-service/internal/domain/model"

// PeakSurchargeRule adds a flat time-of-day surcharge during peak periods.
type PeakSurchargeRule struct{}

// ID returns the rule identifier.
func (PeakSurchargeRule) ID() string { return "peak_surcharge" }

// Weight orders this rule after the zone base rule.
func (PeakSurchargeRule) Weight() int { return 0 }

// Apply adds the peak surcharge to each quote when the context marks the
// period as peak. Disabled or non-positive surcharges are a no-op.
func (PeakSurchargeRule) Apply(quotes []model.CarrierQuote, ctx Context) []model.CarrierQuote {
	if !ctx.IsPeak || ctx.PeakSurcharge <= 0 {
		return quotes
	}

	out := model.CloneQuotes(quotes)
	for i := range out {
		out[i].Amount += ctx.PeakSurcharge
		if out[i].Amount < 0 {
			out[i].Amount = 0
		}
		if out[i].Metadata == nil {
			out[i].Metadata = make(map[string]interface{})
		}
		out[i].Metadata["peak_surcharge"] = ctx.PeakSurcharge
	}
	return out
}

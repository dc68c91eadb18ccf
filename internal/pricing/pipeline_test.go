package pricing

import (
	"testing"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotes() []model.CarrierQuote {
	return []model.CarrierQuote{
		{Carrier: "ups", Service: "Ground", Amount: 12.50, Currency: "USD"},
		{Carrier: "fedex", Service: "Overnight", Amount: 42.00, Currency: "USD"},
	}
}

// discountRule subtracts a flat amount, for clamping tests.
type discountRule struct {
	id     string
	weight int
	delta  float64
}

func (r discountRule) ID() string  { return r.id }
func (r discountRule) Weight() int { return r.weight }
func (r discountRule) Apply(quotes []model.CarrierQuote, _ Context) []model.CarrierQuote {
	out := model.CloneQuotes(quotes)
	for i := range out {
		out[i].Amount += r.delta
		if out[i].Amount < 0 {
			out[i].Amount = 0
		}
		if out[i].Metadata == nil {
			out[i].Metadata = make(map[string]interface{})
		}
		out[i].Metadata[r.id] = r.delta
	}
	return out
}

func TestPipeline_ZoneBaseRule(t *testing.T) {
	p := NewPipeline(DefaultRegistry())

	adjusted := p.ApplyAll(sampleQuotes(), Context{ZoneBase: 3})

	require.Len(t, adjusted, 2)
	assert.Equal(t, 15.50, adjusted[0].Amount)
	assert.Equal(t, 45.00, adjusted[1].Amount)
	assert.Equal(t, 3.0, adjusted[0].Metadata["zone_base_applied"])
}

func TestPipeline_ZoneBaseDisabledWhenZero(t *testing.T) {
	p := NewPipeline(DefaultRegistry())

	adjusted := p.ApplyAll(sampleQuotes(), Context{ZoneBase: 0})

	assert.Equal(t, 12.50, adjusted[0].Amount)
	assert.Nil(t, adjusted[0].Metadata)
}

func TestPipeline_PeakSurchargeRequiresPeakFlag(t *testing.T) {
	p := NewPipeline(DefaultRegistry())

	notPeak := p.ApplyAll(sampleQuotes(), Context{PeakSurcharge: 5})
	assert.Equal(t, 12.50, notPeak[0].Amount)

	peak := p.ApplyAll(sampleQuotes(), Context{PeakSurcharge: 5, IsPeak: true})
	assert.Equal(t, 17.50, peak[0].Amount)
	assert.Equal(t, 5.0, peak[0].Metadata["peak_surcharge"])
}

func TestPipeline_DoesNotMutateInput(t *testing.T) {
	p := NewPipeline(DefaultRegistry())
	input := sampleQuotes()

	_ = p.ApplyAll(input, Context{ZoneBase: 3, PeakSurcharge: 5, IsPeak: true})

	assert.Equal(t, 12.50, input[0].Amount)
	assert.Nil(t, input[0].Metadata)
}

func TestPipeline_OrderIndependentOfRegistration(t *testing.T) {
	// Rules with weights [-10, 0] must produce the same result no matter the
	// registration order.
	run := func(rules ...Rule) []model.CarrierQuote {
		reg := NewRegistry()
		for _, r := range rules {
			reg.Register(r)
		}
		return NewPipeline(reg).ApplyAll(sampleQuotes(), Context{ZoneBase: 3, PeakSurcharge: 5, IsPeak: true})
	}

	forward := run(ZoneBaseRule{}, PeakSurchargeRule{})
	reversed := run(PeakSurchargeRule{}, ZoneBaseRule{})

	assert.Equal(t, forward, reversed)
}

func TestPipeline_TiesKeepRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(discountRule{id: "first", weight: 0, delta: 1})
	reg.Register(discountRule{id: "second", weight: 0, delta: 2})

	rules := reg.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "first", rules[0].ID())
	assert.Equal(t, "second", rules[1].ID())
}

func TestPipeline_AmountsNeverGoNegative(t *testing.T) {
	reg := NewRegistry()
	reg.Register(discountRule{id: "big_discount", weight: 0, delta: -100})
	p := NewPipeline(reg)

	adjusted := p.ApplyAll(sampleQuotes(), Context{})

	for _, q := range adjusted {
		assert.GreaterOrEqual(t, q.Amount, 0.0)
	}
}

func TestPipeline_EmptyQuotes(t *testing.T) {
	p := NewPipeline(DefaultRegistry())
	adjusted := p.ApplyAll(nil, Context{ZoneBase: 3})
	assert.Empty(t, adjusted)
}

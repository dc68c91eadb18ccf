package pricing

import (
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/rs/zerolog/log"
)

// Pipeline applies a rule registry to quote lists.
type Pipeline struct {
	registry *Registry
}

// NewPipeline creates a pipeline over the given registry.
func NewPipeline(registry *Registry) *Pipeline {
	return &Pipeline{registry: registry}
}

// ApplyAll runs every registered rule in ascending weight order. Each stage
// consumes the previous stage's output, so the pipeline is a pure sequence
// of transformations: the caller's slice is never mutated and concurrent
// callers sharing a context cannot observe partial states.
func (p *Pipeline) ApplyAll(quotes []model.CarrierQuote, ctx Context) []model.CarrierQuote {
	current := model.CloneQuotes(quotes)

	for _, rule := range p.registry.Rules() {
		next := rule.Apply(current, ctx)
		for i := range next {
			if next[i].Amount < 0 {
				// Rules must clamp themselves; this is the backstop.
				log.Warn().
					Str("rule", rule.ID()).
					Str("carrier", next[i].Carrier).
					Float64("amount", next[i].Amount).
					Msg("Rule produced negative amount, clamping to zero")
				next[i].Amount = 0
			}
		}
		current = next
	}

	return current
}

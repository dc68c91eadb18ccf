package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/service/cache"
)

// EstimateInput carries everything one price estimate needs. Distance and
// duration arrive pre-resolved by the caller's distance provider.
type EstimateInput struct {
	DistanceKm      float64            `json:"distance_km"`
	DurationMinutes float64            `json:"duration_minutes"`
	WeightKg        float64            `json:"weight_kg"`
	Fragile         bool               `json:"fragile"`
	Options         model.PriceOptions `json:"options"`
	// Packages, when present, are packed against Boxes and the packed
	// billable weight replaces WeightKg if heavier.
	Packages []model.Package `json:"packages,omitempty"`
	Boxes    []model.BoxType `json:"boxes,omitempty"`
}

// Estimator defines the price estimation operations.
type Estimator interface {
	Estimate(input EstimateInput, cfg model.PricingConfig) model.PricingResult
	// InvalidateCache clears the result cache (useful when pricing config changes).
	InvalidateCache()
}

// EstimateOption configures an EstimateService.
type EstimateOption func(*EstimateService)

// EstimateService computes price estimates, optionally caching results by a
// fingerprint of the input and the configuration snapshot.
type EstimateService struct {
	calc   PriceCalculator
	packer Packer
	cache  cache.Cache
}

// NewEstimateService creates an estimate service with the given options.
func NewEstimateService(opts ...EstimateOption) *EstimateService {
	s := &EstimateService{
		calc:   NewTieredPriceCalculator(),
		packer: NewFFDPacker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithResultCache enables sharded result caching.
func WithResultCache(capacity int, ttl time.Duration, shards int) EstimateOption {
	return func(s *EstimateService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) EstimateOption {
	return func(s *EstimateService) {
		s.cache = c
	}
}

// Estimate computes the price for the input under the given configuration
// snapshot. Identical input+config pairs are served from the cache.
func (s *EstimateService) Estimate(input EstimateInput, cfg model.PricingConfig) model.PricingResult {
	start := time.Now()
	key := estimateFingerprint(input, cfg)

	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result
		}
	}

	weight := s.billableWeight(input, cfg)
	result := s.calc.Calculate(input.DistanceKm, input.DurationMinutes, weight, input.Fragile, input.Options, cfg)

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	mode := cfg.PricingMode
	if mode == "" {
		mode = model.ModePerKm
	}
	metrics.RecordPriceCalculation(mode, time.Since(start), "success")
	return result
}

// billableWeight returns the larger of the declared weight and the packed
// billable weight when packages and a catalog are supplied.
func (s *EstimateService) billableWeight(input EstimateInput, cfg model.PricingConfig) float64 {
	if len(input.Packages) == 0 || len(input.Boxes) == 0 {
		return input.WeightKg
	}

	packing := s.packer.Pack(input.Packages, input.Boxes)
	var packed float64
	for _, box := range packing.Boxes {
		packed += PackedBoxBillableWeight(box, cfg.Divisor())
	}
	if packed > input.WeightKg {
		return packed
	}
	return input.WeightKg
}

// InvalidateCache clears the result cache.
func (s *EstimateService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// estimateFingerprint hashes the input and config snapshot into a cache key.
func estimateFingerprint(input EstimateInput, cfg model.PricingConfig) string {
	payload := struct {
		Input  EstimateInput      `json:"input"`
		Config model.PricingConfig `json:"config"`
	}{input, cfg}

	b, err := json.Marshal(payload)
	if err != nil {
		return "unhashable"
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:24]
}

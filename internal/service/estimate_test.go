package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/domain/model"
)

func TestEstimateService_BasicEstimate(t *testing.T) {
	svc := NewEstimateService()

	result := svc.Estimate(EstimateInput{DistanceKm: 2}, model.PricingConfig{
		PricingMode: model.ModePerKm,
		BaseFee:     5,
		PerKmRate:   10,
	})

	assert.Equal(t, 25.0, result.Cost)
}

func TestEstimateService_CachesByInputAndConfig(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()
	svc := NewEstimateService(WithCacheInterface(c))

	input := EstimateInput{DistanceKm: 2}
	cfg := model.PricingConfig{PricingMode: model.ModePerKm, BaseFee: 5, PerKmRate: 10}

	first := svc.Estimate(input, cfg)
	assert.Equal(t, int64(1), c.Metrics().Misses)

	second := svc.Estimate(input, cfg)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), c.Metrics().Hits)

	// A different config snapshot must not reuse the entry.
	cfg.PerKmRate = 20
	third := svc.Estimate(input, cfg)
	assert.Equal(t, 45.0, third.Cost)
}

func TestEstimateService_InvalidateCache(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()
	svc := NewEstimateService(WithCacheInterface(c))

	input := EstimateInput{DistanceKm: 2}
	cfg := model.PricingConfig{PricingMode: model.ModeFlat, BasePrice: 20}

	_ = svc.Estimate(input, cfg)
	svc.InvalidateCache()
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestEstimateService_PackedBillableWeight(t *testing.T) {
	svc := NewEstimateService()

	cfg := model.PricingConfig{
		PricingMode:   model.ModeTiered,
		DistanceTiers: []model.DistanceTier{{MaxKm: 100, PerKmRate: 1}},
		WeightTiers: []model.WeightTier{
			{MaxKg: 5, ExtraPerKm: 0},
			{MaxKg: 100, ExtraPerKm: 2},
		},
		DimDivisor: 5000,
	}

	// Declared weight 1kg sits in the free tier, but the opened box's
	// dimensional weight (60x50x50/5000 = 30kg) lands in the surcharge tier.
	input := EstimateInput{
		DistanceKm: 10,
		WeightKg:   1,
		Packages:   []model.Package{{Length: 50, Width: 40, Height: 40, Weight: 1}},
		Boxes:      []model.BoxType{{Name: "large", Length: 60, Width: 50, Height: 50, WeightLimit: 30}},
	}

	result := svc.Estimate(input, cfg)
	// 10km x 1 + 10km x 2 weight surcharge
	assert.Equal(t, 30.0, result.Cost)

	// Without packages the declared weight stays in the free tier.
	light := svc.Estimate(EstimateInput{DistanceKm: 10, WeightKg: 1}, cfg)
	assert.Equal(t, 10.0, light.Cost)
}

func TestEstimateService_DeclaredWeightWinsWhenHeavier(t *testing.T) {
	svc := NewEstimateService()

	cfg := model.PricingConfig{
		PricingMode:   model.ModeTiered,
		DistanceTiers: []model.DistanceTier{{MaxKm: 100, PerKmRate: 1}},
		WeightTiers: []model.WeightTier{
			{MaxKg: 5, ExtraPerKm: 0},
			{MaxKg: 100, ExtraPerKm: 2},
		},
	}

	// Small light package, but 20kg declared: declared weight governs.
	input := EstimateInput{
		DistanceKm: 10,
		WeightKg:   20,
		Packages:   []model.Package{{Length: 10, Width: 10, Height: 10, Weight: 0.5}},
		Boxes:      []model.BoxType{{Name: "small", Length: 20, Width: 15, Height: 12, WeightLimit: 5}},
	}

	result := svc.Estimate(input, cfg)
	assert.Equal(t, 30.0, result.Cost)
}

func TestEstimateFingerprint_Stable(t *testing.T) {
	input := EstimateInput{DistanceKm: 2, WeightKg: 4}
	cfg := model.PricingConfig{PricingMode: model.ModePerKm}

	a := estimateFingerprint(input, cfg)
	b := estimateFingerprint(input, cfg)
	require.Equal(t, a, b)

	cfg.PerKmRate = 1
	assert.NotEqual(t, a, estimateFingerprint(input, cfg))
}

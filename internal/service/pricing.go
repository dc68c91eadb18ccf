// Package service contains the business logic for the quote service.
package service

import (
	"fmt"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// PriceCalculator defines the interface for price calculation operations.
type PriceCalculator interface {
	Calculate(distanceKm, durationMin, weightKg float64, fragile bool, opts model.PriceOptions, cfg model.PricingConfig) model.PricingResult
}

// TieredPriceCalculator implements PriceCalculator. It runs a fixed sequence
// of stages: base (selected by pricing mode), priority multiplier,
// after-hours surcharge and the global fragile surcharge. Surcharges compound
// on the running total, so stage order is load-bearing.
//
// The calculator is stateless; the configuration snapshot is passed per call
// and never retained, so concurrent calculations cannot interfere.
type TieredPriceCalculator struct{}

// NewTieredPriceCalculator creates a new TieredPriceCalculator.
func NewTieredPriceCalculator() *TieredPriceCalculator {
	return &TieredPriceCalculator{}
}

// Calculate computes the shipment cost and its ordered breakdown.
// Missing or invalid configuration values fall back to documented defaults;
// the calculator never fails. Negative inputs are the caller's validation
// responsibility.
func (s *TieredPriceCalculator) Calculate(distanceKm, durationMin, weightKg float64, fragile bool, opts model.PriceOptions, cfg model.PricingConfig) model.PricingResult {
	var (
		cost      float64
		breakdown []model.BreakdownLine
	)

	switch cfg.PricingMode {
	case model.ModeFlat:
		cost = cfg.Base()
		breakdown = append(breakdown, model.BreakdownLine{Label: "Flat fee", Amount: cost})

	case model.ModePerMinute, model.ModePerMin:
		cost = cfg.Base() + durationMin*cfg.PerMinuteRate
		breakdown = append(breakdown, model.BreakdownLine{Label: "Time-based fee", Amount: cost})

	case model.ModeHybrid:
		cost = cfg.Base() + distanceKm*cfg.PerKmRate + durationMin*cfg.PerMinuteRate
		breakdown = append(breakdown, model.BreakdownLine{Label: "Distance+Time base", Amount: cost})

	case model.ModeTiered:
		cost, breakdown = s.tieredBase(distanceKm, weightKg, durationMin, fragile, cfg)

	case model.ModePerKm:
		fallthrough
	default:
		cost = cfg.Base() + distanceKm*cfg.PerKmRate
		breakdown = append(breakdown, model.BreakdownLine{Label: "Distance-based fee", Amount: cost})
	}

	if opts.Priority {
		multiplier := cfg.Priority()
		before := cost
		cost *= multiplier
		breakdown = append(breakdown, model.BreakdownLine{
			Label:  fmt.Sprintf("Priority multiplier (x%.2f)", multiplier),
			Amount: model.Round2(cost - before),
		})
	}

	if opts.RequestedDeliveryTimestamp != nil && cfg.AfterHoursPct > 0 {
		if isAfterHours(*opts.RequestedDeliveryTimestamp, cfg) {
			before := cost
			cost *= 1 + cfg.AfterHoursPct/100
			breakdown = append(breakdown, model.BreakdownLine{
				Label:  fmt.Sprintf("After-hours surcharge (%.1f%%)", cfg.AfterHoursPct),
				Amount: model.Round2(cost - before),
			})
		}
	}

	if fragile && (cfg.FragileSurchargeFlat > 0 || cfg.FragileSurchargePct > 0) {
		delta := cfg.FragileSurchargeFlat
		if cfg.FragileSurchargePct > 0 {
			delta += cost * cfg.FragileSurchargePct / 100
		}
		cost += delta
		breakdown = append(breakdown, model.BreakdownLine{
			Label:  fragileLabel(cfg.FragileSurchargeFlat, cfg.FragileSurchargePct),
			Amount: model.Round2(delta),
		})
	}

	return model.PricingResult{
		Cost:      model.Round2(cost),
		Breakdown: breakdown,
	}
}

// tieredBase computes the distance_and_weight_tiered base stage.
// The mode-local fragile surcharge fires here, before the global stages;
// when the global fragile stage is also configured both apply. That
// duplication is intentional and kept reproducible.
func (s *TieredPriceCalculator) tieredBase(distanceKm, weightKg, durationMin float64, fragile bool, cfg model.PricingConfig) (float64, []model.BreakdownLine) {
	var breakdown []model.BreakdownLine

	cost := cfg.Base()
	if cost != 0 {
		breakdown = append(breakdown, model.BreakdownLine{Label: "Base fee", Amount: cost})
	}

	rate := distanceTierRate(cfg.DistanceTiers, distanceKm)
	distanceCost := distanceKm * rate
	cost += distanceCost
	breakdown = append(breakdown, model.BreakdownLine{
		Label:  fmt.Sprintf("Tiered distance fee (%.2f/km)", rate),
		Amount: model.Round2(distanceCost),
	})

	if extra := weightTierRate(cfg.WeightTiers, weightKg); extra > 0 {
		weightCost := distanceKm * extra
		cost += weightCost
		breakdown = append(breakdown, model.BreakdownLine{
			Label:  fmt.Sprintf("Weight surcharge (%.2f/km)", extra),
			Amount: model.Round2(weightCost),
		})
	}

	if cfg.DistanceTierIncludeDuration && cfg.PerMinuteRate > 0 {
		durationCost := durationMin * cfg.PerMinuteRate
		cost += durationCost
		breakdown = append(breakdown, model.BreakdownLine{
			Label:  "Duration component",
			Amount: model.Round2(durationCost),
		})
	}

	if cfg.TieredFragileIncluded && fragile && (cfg.FragileSurchargeFlat > 0 || cfg.FragileSurchargePct > 0) {
		delta := cfg.FragileSurchargeFlat
		if cfg.FragileSurchargePct > 0 {
			delta += cost * cfg.FragileSurchargePct / 100
		}
		cost += delta
		breakdown = append(breakdown, model.BreakdownLine{
			Label:  "Fragile handling (tiered)",
			Amount: model.Round2(delta),
		})
	}

	return cost, breakdown
}

// distanceTierRate returns the rate of the first tier whose MaxKm >= distance.
// Tiers are evaluated with inclusive upper bounds; the last tier is the
// catch-all regardless of its declared threshold.
func distanceTierRate(tiers []model.DistanceTier, distanceKm float64) float64 {
	if len(tiers) == 0 {
		return 0
	}
	for _, tier := range tiers {
		if distanceKm <= tier.MaxKm {
			return tier.PerKmRate
		}
	}
	return tiers[len(tiers)-1].PerKmRate
}

// weightTierRate returns the extra per-km rate of the first tier whose
// MaxKg >= weight, with the last tier as catch-all.
func weightTierRate(tiers []model.WeightTier, weightKg float64) float64 {
	if len(tiers) == 0 {
		return 0
	}
	for _, tier := range tiers {
		if weightKg <= tier.MaxKg {
			return tier.ExtraPerKm
		}
	}
	return tiers[len(tiers)-1].ExtraPerKm
}

// isAfterHours reports whether the timestamp falls outside business hours.
// Weekends count as after-hours; hours are evaluated in UTC against the
// half-open interval [start, end).
func isAfterHours(epochSeconds int64, cfg model.PricingConfig) bool {
	t := time.Unix(epochSeconds, 0).UTC()
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	start, end := cfg.BusinessHours()
	hour := t.Hour()
	return hour < start || hour >= end
}

// fragileLabel describes which fragile surcharge components applied.
func fragileLabel(flat, pct float64) string {
	switch {
	case flat > 0 && pct > 0:
		return fmt.Sprintf("Fragile surcharge (%.2f flat + %.1f%%)", flat, pct)
	case flat > 0:
		return fmt.Sprintf("Fragile surcharge (%.2f flat)", flat)
	default:
		return fmt.Sprintf("Fragile surcharge (%.1f%%)", pct)
	}
}

package model

import "math"

// Pricing modes supported by the price calculator. Unknown modes fall back
// to ModePerKm.
const (
	ModeFlat      = "flat"
	ModePerKm     = "per_km"
	ModePerMinute = "per_minute"
	ModePerMin    = "per_min"
	ModeHybrid    = "hybrid"
	ModeTiered    = "distance_and_weight_tiered"
)

// Defaults applied when a configuration value is missing or invalid.
const (
	DefaultPriorityMultiplier = 1.25
	DefaultBusinessStartHour  = 8
	DefaultBusinessEndHour    = 18
	DefaultDimDivisor         = 5000
)

// DistanceTier is one distance bracket. The applicable tier is the first
// whose MaxKm is >= the measured distance (inclusive upper bound); the last
// tier acts as the catch-all.
type DistanceTier struct {
	MaxKm     float64 `json:"max_km"`
	PerKmRate float64 `json:"per_km_rate"`
}

// WeightTier is one weight bracket adding an extra per-km rate.
type WeightTier struct {
	MaxKg      float64 `json:"max_kg"`
	ExtraPerKm float64 `json:"extra_per_km"`
}

// PricingConfig is a read-only pricing configuration snapshot. One snapshot
// is taken per calculation and never shared mutably across concurrent
// requests.
type PricingConfig struct {
	PricingMode   string  `json:"pricing_mode"`
	BaseFee       float64 `json:"base_fee"`
	BasePrice     float64 `json:"base_price"`
	PerKmRate     float64 `json:"per_km_rate"`
	PerMinuteRate float64 `json:"per_minute_rate"`

	DistanceTiers []DistanceTier `json:"distance_tiers"`
	WeightTiers   []WeightTier   `json:"weight_tiers"`
	// DistanceTierIncludeDuration adds the per-minute component inside the
	// tiered mode when enabled.
	DistanceTierIncludeDuration bool `json:"distance_tier_include_duration"`
	// TieredFragileIncluded applies the fragile surcharge inside the tiered
	// base stage, before the global fragile stage. Both may apply.
	TieredFragileIncluded bool `json:"tiered_fragile_included"`

	FragileSurchargeFlat float64 `json:"fragile_surcharge_flat"`
	FragileSurchargePct  float64 `json:"fragile_surcharge_pct"`
	PriorityMultiplier   float64 `json:"priority_multiplier"`
	AfterHoursPct        float64 `json:"after_hours_surcharge_pct"`
	BusinessStartHour    int     `json:"business_start_hour"`
	BusinessEndHour      int     `json:"business_end_hour"`

	DimDivisor float64 `json:"dim_divisor"`

	ZoneBase      float64 `json:"zone_base"`
	PeakSurcharge float64 `json:"peak_surcharge"`
	IsPeak        bool    `json:"is_peak"`
}

// Base returns the base fee, honoring both legacy key spellings
// (base_fee and base_price).
func (c PricingConfig) Base() float64 {
	if c.BaseFee != 0 {
		return c.BaseFee
	}
	return c.BasePrice
}

// Priority returns the priority multiplier, falling back to the default
// when unset or not positive.
func (c PricingConfig) Priority() float64 {
	if c.PriorityMultiplier <= 0 {
		return DefaultPriorityMultiplier
	}
	return c.PriorityMultiplier
}

// BusinessHours returns the configured business hour bounds with defaults.
func (c PricingConfig) BusinessHours() (start, end int) {
	start, end = c.BusinessStartHour, c.BusinessEndHour
	if start <= 0 && end <= 0 {
		return DefaultBusinessStartHour, DefaultBusinessEndHour
	}
	if end <= start {
		return DefaultBusinessStartHour, DefaultBusinessEndHour
	}
	return start, end
}

// Divisor returns the dimensional weight divisor with the default applied.
func (c PricingConfig) Divisor() float64 {
	if c.DimDivisor <= 0 {
		return DefaultDimDivisor
	}
	return c.DimDivisor
}

// PriceOptions carries per-request pricing options.
type PriceOptions struct {
	// Priority enables the priority multiplier stage
	Priority bool `json:"priority"`
	// RequestedDeliveryTimestamp is the requested delivery time as epoch
	// seconds; when nil the after-hours stage is skipped entirely
	RequestedDeliveryTimestamp *int64 `json:"requested_delivery_timestamp,omitempty"`
}

// BreakdownLine is one ordered entry of a price breakdown. The amount may be
// a delta contributed by a surcharge stage rather than a running total.
type BreakdownLine struct {
	Label  string  `json:"label" example:"Distance-based fee"`
	Amount float64 `json:"amount" example:"25"`
}

// PricingResult is the terminal outcome of a price calculation.
//
// @Description Price calculation result with ordered breakdown
// @Example {"cost": 25.00, "breakdown": [{"label": "Distance-based fee", "amount": 25}]}
type PricingResult struct {
	// Cost is the total cost rounded to 2 decimals
	Cost float64 `json:"cost" example:"25.00"`
	// Breakdown lists the stages in computation order
	Breakdown []BreakdownLine `json:"breakdown"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

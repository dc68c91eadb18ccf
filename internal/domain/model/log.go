package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalculationLog records one price calculation or quote aggregation for
// auditing. Entries are persisted asynchronously and expire via a TTL index.
type CalculationLog struct {
	ID        primitive.ObjectID `json:"id,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	RequestID string             `json:"request_id,omitempty"`
	// Kind is "price", "quotes" or "pack"
	Kind string `json:"kind"`

	PricingMode string  `json:"pricing_mode,omitempty"`
	DistanceKm  float64 `json:"distance_km,omitempty"`
	DurationMin float64 `json:"duration_minutes,omitempty"`
	WeightKg    float64 `json:"weight_kg,omitempty"`
	Fragile     bool    `json:"fragile,omitempty"`
	Priority    bool    `json:"priority,omitempty"`

	// Total is the computed cost for price logs, or the cheapest adjusted
	// quote amount for quote logs
	Total      float64 `json:"total,omitempty"`
	QuoteCount int     `json:"quote_count,omitempty"`

	DurationMs int64  `json:"duration_ms,omitempty"`
	IP         string `json:"ip,omitempty"`
	Error      string `json:"error,omitempty"`

	Fields map[string]interface{} `json:"fields,omitempty"`
}

// LogQueryOptions filters calculation log queries.
type LogQueryOptions struct {
	RequestID   string
	Kind        string
	PricingMode string
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Skip        int
}

package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Shipment describes what is being quoted. Origin and destination are
// opaque strings already resolved to distance/duration by the caller.
type Shipment struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Packages    []Package `json:"packages"`
	// WeightKg is the total billable shipment weight in kg
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	Fragile    bool    `json:"fragile"`
	Priority   bool    `json:"priority"`
}

// Fingerprint returns a stable hash of the shipment contents, used to key
// cached carrier rate responses.
func (s Shipment) Fingerprint() string {
	// json.Marshal on a struct is deterministic (field order), but package
	// order matters to carriers, so no normalization beyond marshaling.
	b, err := json.Marshal(s)
	if err != nil {
		return "unhashable"
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:16]
}

// CarrierQuote is one carrier-proposed price for a shipment service level.
// Quotes are only mutated inside the pricing rule pipeline, which operates
// on copies rather than aliasing its input.
type CarrierQuote struct {
	// Carrier is the provider id (e.g. "ups")
	Carrier string `json:"carrier" example:"ups"`
	// Service is the carrier service level name
	Service string `json:"service" example:"Ground"`
	// Amount is the quoted price, never negative
	Amount float64 `json:"amount" example:"12.50"`
	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"USD"`
	// Metadata carries diagnostic annotations added by pipeline rules
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Clone returns a deep copy of the quote, including its metadata map.
func (q CarrierQuote) Clone() CarrierQuote {
	out := q
	if q.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(q.Metadata))
		for k, v := range q.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// CloneQuotes deep-copies a quote list.
func CloneQuotes(quotes []CarrierQuote) []CarrierQuote {
	out := make([]CarrierQuote, len(quotes))
	for i, q := range quotes {
		out[i] = q.Clone()
	}
	return out
}

// SortQuotesByAmount orders quotes cheapest first, keeping the relative
// order of equal amounts.
func SortQuotesByAmount(quotes []CarrierQuote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Amount < quotes[j].Amount
	})
}

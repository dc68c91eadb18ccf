// Package dto defines Data Transfer Objects for HTTP request and response
// handling. DTOs decouple the HTTP layer from the domain model and carry the
// binding/validation tags for API input.
package dto

import (
	"github.com/guttosm/quote-service/internal/domain/model"
)

// PackageRequest is one package in a request body.
//
// @Description Package dimensions (cm) and weight (kg)
// @Example {"length": 30, "width": 20, "height": 15, "weight": 2.5}
type PackageRequest struct {
	Length float64 `json:"length" binding:"required,gt=0" example:"30"`
	Width  float64 `json:"width" binding:"required,gt=0" example:"20"`
	Height float64 `json:"height" binding:"required,gt=0" example:"15"`
	Weight float64 `json:"weight" binding:"required,gt=0" example:"2.5"`
} // @name PackageRequest

// ToModel converts the request package to the domain type.
func (r PackageRequest) ToModel() model.Package {
	return model.Package{Length: r.Length, Width: r.Width, Height: r.Height, Weight: r.Weight}
}

// ToModelPackages converts a request package list to domain packages.
func ToModelPackages(reqs []PackageRequest) []model.Package {
	out := make([]model.Package, len(reqs))
	for i, r := range reqs {
		out[i] = r.ToModel()
	}
	return out
}

// PriceEstimateRequest is the request body for the price endpoint. Distance
// and duration arrive pre-resolved; the service never geocodes.
//
// @Description Request to calculate a price estimate with breakdown
// @Example {"distance_km": 2, "weight_kg": 4, "fragile": false}
type PriceEstimateRequest struct {
	// DistanceKm is the driving distance in km
	DistanceKm float64 `json:"distance_km" binding:"gte=0" example:"12.5"`
	// DurationMinutes is the driving duration in minutes
	DurationMinutes float64 `json:"duration_minutes" binding:"gte=0" example:"24"`
	// WeightKg is the billable shipment weight in kg
	WeightKg float64 `json:"weight_kg" binding:"gte=0" example:"4"`
	Fragile  bool    `json:"fragile" example:"false"`
	Priority bool    `json:"priority" example:"false"`
	// RequestedDeliveryTimestamp is the requested delivery time as epoch
	// seconds; omit to skip the after-hours surcharge entirely
	RequestedDeliveryTimestamp *int64 `json:"requested_delivery_timestamp,omitempty" example:"1741003200"`
	// PricingMode overrides the configured pricing mode for this request
	PricingMode string `json:"pricing_mode,omitempty" binding:"omitempty,pricing_mode" example:"per_km"`
	// Packages optionally replaces weight_kg with packed billable weight
	Packages []PackageRequest `json:"packages,omitempty" binding:"omitempty,dive"`
} // @name PriceEstimateRequest

// Options returns the per-request pricing options.
func (r *PriceEstimateRequest) Options() model.PriceOptions {
	return model.PriceOptions{
		Priority:                   r.Priority,
		RequestedDeliveryTimestamp: r.RequestedDeliveryTimestamp,
	}
}

// QuoteRequest is the request body for the carrier quotes endpoint.
//
// @Description Request to aggregate carrier quotes for a shipment
type QuoteRequest struct {
	Origin      string `json:"origin" binding:"required" example:"Berlin"`
	Destination string `json:"destination" binding:"required" example:"Hamburg"`
	// DistanceKm is the resolved driving distance in km
	DistanceKm float64 `json:"distance_km" binding:"gte=0" example:"290"`
	// WeightKg is the billable shipment weight in kg
	WeightKg float64          `json:"weight_kg" binding:"gte=0" example:"12"`
	Packages []PackageRequest `json:"packages,omitempty" binding:"omitempty,dive"`
	Fragile  bool             `json:"fragile" example:"false"`
	Priority bool             `json:"priority" example:"false"`
	// Currency is an optional ISO 4217 display currency
	Currency string `json:"currency,omitempty" binding:"omitempty,currency_code" example:"USD"`
} // @name QuoteRequest

// ToShipment converts the request to a domain shipment.
func (r *QuoteRequest) ToShipment() model.Shipment {
	return model.Shipment{
		Origin:      r.Origin,
		Destination: r.Destination,
		Packages:    ToModelPackages(r.Packages),
		WeightKg:    r.WeightKg,
		DistanceKm:  r.DistanceKm,
		Fragile:     r.Fragile,
		Priority:    r.Priority,
	}
}

// BoxTypeRequest is one box in a catalog request body.
type BoxTypeRequest struct {
	Name        string  `json:"name" binding:"required" example:"medium"`
	Length      float64 `json:"length" binding:"required,gt=0" example:"40"`
	Width       float64 `json:"width" binding:"required,gt=0" example:"30"`
	Height      float64 `json:"height" binding:"required,gt=0" example:"30"`
	WeightLimit float64 `json:"weight_limit" binding:"required,gt=0" example:"20"`
} // @name BoxTypeRequest

// ToModel converts the request box to the domain type.
func (r BoxTypeRequest) ToModel() model.BoxType {
	return model.BoxType{
		Name:        r.Name,
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		WeightLimit: r.WeightLimit,
	}
}

// ToModelBoxes converts a request box list to domain box types.
func ToModelBoxes(reqs []BoxTypeRequest) []model.BoxType {
	out := make([]model.BoxType, len(reqs))
	for i, r := range reqs {
		out[i] = r.ToModel()
	}
	return out
}

// PackRequest is the request body for the pack endpoint.
//
// @Description Request to pack items into configured boxes
// @Example {"items": [{"length": 30, "width": 20, "height": 15, "weight": 2.5}]}
type PackRequest struct {
	// Items are the packages to pack
	Items []PackageRequest `json:"items" binding:"required,min=1,dive"`
	// Boxes optionally overrides the configured box catalog for this request
	Boxes []BoxTypeRequest `json:"boxes,omitempty" binding:"omitempty,dive"`
} // @name PackRequest

// UpdateBoxTypesRequest is the request body for replacing the box catalog.
type UpdateBoxTypesRequest struct {
	// Boxes is the new catalog, ordered ascending by volume
	Boxes []BoxTypeRequest `json:"boxes" binding:"required,min=1,dive"`
	// CreatedBy identifies who created this configuration
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateBoxTypesRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the pack request.
func (r *PackRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	return nil
}

// Validate performs custom validation on the price estimate request.
func (r *PriceEstimateRequest) Validate() error {
	if r.DistanceKm < 0 {
		return &ValidationError{Field: "distance_km", Message: "must not be negative"}
	}
	if r.DurationMinutes < 0 {
		return &ValidationError{Field: "duration_minutes", Message: "must not be negative"}
	}
	if r.WeightKg < 0 {
		return &ValidationError{Field: "weight_kg", Message: "must not be negative"}
	}
	return nil
}

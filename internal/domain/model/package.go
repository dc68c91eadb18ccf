// Package model defines the core domain entities for the quote service.
package model

// Package represents a single physical package to be shipped.
// Dimensions are in centimeters, weight in kilograms. Immutable input.
//
// @Description Package dimensions and weight
// @Example {"length": 30, "width": 20, "height": 15, "weight": 2.5}
type Package struct {
	// Length is the package length in cm
	Length float64 `json:"length" example:"30"`
	// Width is the package width in cm
	Width float64 `json:"width" example:"20"`
	// Height is the package height in cm
	Height float64 `json:"height" example:"15"`
	// Weight is the actual package weight in kg
	Weight float64 `json:"weight" example:"2.5"`
}

// Volume returns the package volume in cubic centimeters.
func (p Package) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// BoxType is a configured box available for packing.
// Catalogs are ordered ascending by volume for selection purposes.
type BoxType struct {
	// Name identifies the box type (e.g. "small", "medium")
	Name string `json:"name" example:"medium"`
	// Length is the inner box length in cm
	Length float64 `json:"length" example:"40"`
	// Width is the inner box width in cm
	Width float64 `json:"width" example:"30"`
	// Height is the inner box height in cm
	Height float64 `json:"height" example:"30"`
	// WeightLimit is the maximum total weight the box can carry in kg
	WeightLimit float64 `json:"weight_limit" example:"20"`
}

// Volume returns the box volume in cubic centimeters.
func (b BoxType) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// FitsItem reports whether the item fits the empty box, allowing a
// length/width swap. Height is never rotated.
func (b BoxType) FitsItem(item Package) bool {
	if item.Weight > b.WeightLimit {
		return false
	}
	fitsDims := (item.Length <= b.Length && item.Width <= b.Width && item.Height <= b.Height) ||
		(item.Length <= b.Width && item.Width <= b.Length && item.Height <= b.Height)
	return fitsDims
}

// PackedBox is one opened box with the packages assigned to it.
// It is created by the packer and not mutated after packing completes.
type PackedBox struct {
	// Box is the box type this packed box was opened with
	Box BoxType `json:"box"`
	// Items are the packages assigned to this box, in placement order
	Items []Package `json:"items"`
	// TotalWeight is the running sum of item weights in kg
	TotalWeight float64 `json:"total_weight"`
}

// PackingResult is the outcome of packing a set of items.
//
// @Description Packing result with opened boxes and soft warnings
type PackingResult struct {
	// Boxes lists the opened boxes in the order they were opened
	Boxes []PackedBox `json:"boxes"`
	// Warnings lists soft degradations, e.g. oversize items placed in the
	// largest catalog box as a lossy fallback
	Warnings []string `json:"warnings,omitempty"`
}

// EmptyPacking returns an empty packing result.
func EmptyPacking() PackingResult {
	return PackingResult{Boxes: []PackedBox{}}
}

package service

import "github.com/guttosm/quote-service/internal/domain/model"

// DimensionalWeight derives the volumetric weight in kg from dimensions in
// cm. Returns 0 when any dimension is not positive. A divisor <= 0 falls
// back to the standard 5000.
func DimensionalWeight(lengthCm, widthCm, heightCm, divisor float64) float64 {
	if divisor <= 0 {
		divisor = model.DefaultDimDivisor
	}
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return 0
	}
	return model.Round2(lengthCm * widthCm * heightCm / divisor)
}

// BillableWeight returns the weight a carrier charges for: the greater of
// the actual and dimensional weight.
func BillableWeight(actualKg, dimensionalKg float64) float64 {
	if dimensionalKg > actualKg {
		return dimensionalKg
	}
	return actualKg
}

// PackedBoxBillableWeight computes the billable weight of one packed box
// from the box's outer dimensions and its total item weight.
func PackedBoxBillableWeight(box model.PackedBox, divisor float64) float64 {
	dim := DimensionalWeight(box.Box.Length, box.Box.Width, box.Box.Height, divisor)
	return BillableWeight(box.TotalWeight, dim)
}

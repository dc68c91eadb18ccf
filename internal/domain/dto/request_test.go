package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationEngine(t *testing.T) *validator.Validate {
	t.Helper()
	require.NoError(t, RegisterValidators())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestPriceEstimateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PriceEstimateRequest
		wantErr string
	}{
		{"valid", PriceEstimateRequest{DistanceKm: 10, WeightKg: 5}, ""},
		{"zero values valid", PriceEstimateRequest{}, ""},
		{"negative distance", PriceEstimateRequest{DistanceKm: -1}, "distance_km"},
		{"negative duration", PriceEstimateRequest{DurationMinutes: -2}, "duration_minutes"},
		{"negative weight", PriceEstimateRequest{WeightKg: -0.5}, "weight_kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPriceEstimateRequest_Options(t *testing.T) {
	ts := int64(1741003200)
	req := PriceEstimateRequest{Priority: true, RequestedDeliveryTimestamp: &ts}

	opts := req.Options()
	assert.True(t, opts.Priority)
	require.NotNil(t, opts.RequestedDeliveryTimestamp)
	assert.Equal(t, ts, *opts.RequestedDeliveryTimestamp)
}

func TestQuoteRequest_ToShipment(t *testing.T) {
	req := QuoteRequest{
		Origin:      "Berlin",
		Destination: "Hamburg",
		DistanceKm:  290,
		WeightKg:    12,
		Fragile:     true,
		Packages: []PackageRequest{
			{Length: 30, Width: 20, Height: 15, Weight: 2.5},
		},
	}

	s := req.ToShipment()
	assert.Equal(t, "Berlin", s.Origin)
	assert.Equal(t, 290.0, s.DistanceKm)
	assert.True(t, s.Fragile)
	require.Len(t, s.Packages, 1)
	assert.Equal(t, 2.5, s.Packages[0].Weight)
}

func TestBoxTypeRequest_ToModel(t *testing.T) {
	boxes := ToModelBoxes([]BoxTypeRequest{
		{Name: "small", Length: 20, Width: 15, Height: 10, WeightLimit: 5},
		{Name: "medium", Length: 40, Width: 30, Height: 30, WeightLimit: 15},
	})
	require.Len(t, boxes, 2)
	assert.Equal(t, "small", boxes[0].Name)
	assert.Equal(t, 15.0, boxes[1].WeightLimit)
}

func TestPackRequest_Validate(t *testing.T) {
	assert.Error(t, (&PackRequest{}).Validate())
	assert.NoError(t, (&PackRequest{Items: []PackageRequest{{Length: 1, Width: 1, Height: 1, Weight: 1}}}).Validate())
}

func TestPricingModeValidator(t *testing.T) {
	v := validationEngine(t)

	tests := []struct {
		mode  string
		valid bool
	}{
		{"flat", true},
		{"per_km", true},
		{"per_minute", true},
		{"per_min", true},
		{"hybrid", true},
		{"distance_and_weight_tiered", true},
		{"", true}, // omitempty
		{"teleport", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			req := PriceEstimateRequest{PricingMode: tt.mode}
			err := v.Struct(req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCurrencyValidator(t *testing.T) {
	v := validationEngine(t)

	valid := QuoteRequest{Origin: "A", Destination: "B", Currency: "USD"}
	assert.NoError(t, v.Struct(valid))

	invalid := QuoteRequest{Origin: "A", Destination: "B", Currency: "DOUBLOONS"}
	assert.Error(t, v.Struct(invalid))
}

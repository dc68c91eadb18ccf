package service

import (
	"testing"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestDimensionalWeight(t *testing.T) {
	tests := []struct {
		name     string
		l, w, h  float64
		divisor  float64
		expected float64
	}{
		{"standard divisor", 50, 40, 30, 5000, 12},
		{"custom divisor", 50, 40, 30, 6000, 10},
		{"zero divisor falls back to 5000", 50, 40, 30, 0, 12},
		{"negative divisor falls back to 5000", 50, 40, 30, -1, 12},
		{"zero length returns 0", 0, 40, 30, 5000, 0},
		{"negative dimension returns 0", 50, -1, 30, 5000, 0},
		{"rounds to 2 decimals", 33, 21, 17, 5000, 2.36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DimensionalWeight(tt.l, tt.w, tt.h, tt.divisor))
		})
	}
}

func TestBillableWeight(t *testing.T) {
	assert.Equal(t, 12.0, BillableWeight(8, 12))
	assert.Equal(t, 15.0, BillableWeight(15, 12))
	assert.Equal(t, 5.0, BillableWeight(5, 5))
}

func TestPackedBoxBillableWeight(t *testing.T) {
	box := model.PackedBox{
		Box:         model.BoxType{Length: 50, Width: 40, Height: 30},
		TotalWeight: 8,
	}
	// dimensional 12 beats actual 8
	assert.Equal(t, 12.0, PackedBoxBillableWeight(box, 5000))

	box.TotalWeight = 20
	assert.Equal(t, 20.0, PackedBoxBillableWeight(box, 5000))
}

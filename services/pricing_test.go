package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resort-backend/models"
)

func TestPriceStay(t *testing.T) {
	offering := models.RoomOffering{ID: 1, Name: "Standard", BasePrice: 510, Currency: "THB", MaxGuests: 2}

	t.Run("three nights no extra bed", func(t *testing.T) {
		got := PriceStay(3, offering, false)
		assert.Equal(t, 3, got.Nights)
		assert.InDelta(t, 1530, got.RoomTotal, 1e-9)
		assert.InDelta(t, 0, got.ExtraBedCost, 1e-9)
		assert.InDelta(t, 1530, got.Subtotal, 1e-9)
		assert.InDelta(t, 183.60, got.Taxes, 1e-9)
		assert.InDelta(t, 1713.60, got.Total, 1e-9)
		assert.Equal(t, "THB", got.Currency)
	})

	t.Run("extra bed charged per night", func(t *testing.T) {
		got := PriceStay(2, offering, true)
		assert.InDelta(t, 1020, got.RoomTotal, 1e-9)
		assert.InDelta(t, 300, got.ExtraBedCost, 1e-9)
		assert.InDelta(t, 1320, got.Subtotal, 1e-9)
	})

	t.Run("breakdown is internally consistent", func(t *testing.T) {
		for nights := 1; nights <= 30; nights++ {
			for _, extraBed := range []bool{false, true} {
				got := PriceStay(nights, offering, extraBed)
				assert.InDelta(t, got.RoomTotal+got.ExtraBedCost, got.Subtotal, 1e-9)
				assert.InDelta(t, got.Subtotal+got.Taxes, got.Total, 1e-9)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, PriceStay(5, offering, true), PriceStay(5, offering, true))
	})
}

func TestEstimateEvent(t *testing.T) {
	offering := models.EventOffering{ID: 1, Name: "Garden Pavilion", BasePrice: 2500, MaxCapacity: 200}

	tests := []struct {
		name     string
		guests   int
		catering bool
		want     float64
	}{
		{"150 guests with catering", 150, true, 6750},
		{"under surcharge threshold", 80, false, 2500},
		{"exactly at threshold", 100, false, 2500},
		{"one over threshold", 101, false, 2510},
		{"catering only", 40, true, 3500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateEvent(offering, tt.guests, tt.catering), 1e-9)
		})
	}
}

func TestRound2HalfUp(t *testing.T) {
	assert.InDelta(t, 0.13, round2(0.125), 1e-9)
	assert.InDelta(t, 183.60, round2(1530*0.12), 1e-9)
}

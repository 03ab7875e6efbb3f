package services

import (
	"math"

	"resort-backend/models"
)

// Fixed pricing constants, currency units per night or per guest.
const (
	ExtraBedNightlyRate  = 150.0
	TaxRate              = 0.12
	SurchargeFreeGuests  = 100
	SurchargePerGuest    = 10.0
	CateringRatePerGuest = 25.0
)

// PricingBreakdown is derived on demand from a stay selection and never
// stored; persisting it happens only as part of a confirmed booking snapshot.
type PricingBreakdown struct {
	Nights       int     `json:"nights"`
	RoomTotal    float64 `json:"roomTotal"`
	ExtraBedCost float64 `json:"extraBedCost"`
	Subtotal     float64 `json:"subtotal"`
	Taxes        float64 `json:"taxes"`
	Total        float64 `json:"total"`
	Currency     string  `json:"currency"`
}

// round2 rounds half-up to two decimals for display amounts.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// PriceStay computes the full breakdown for a room stay. Pure and
// deterministic; nights must be >= 1, which the date validator guarantees
// upstream.
func PriceStay(nights int, offering models.RoomOffering, extraBed bool) PricingBreakdown {
	roomTotal := float64(nights) * offering.BasePrice
	extraBedCost := 0.0
	if extraBed {
		extraBedCost = float64(nights) * ExtraBedNightlyRate
	}
	subtotal := roomTotal + extraBedCost
	taxes := round2(subtotal * TaxRate)
	return PricingBreakdown{
		Nights:       nights,
		RoomTotal:    roomTotal,
		ExtraBedCost: extraBedCost,
		Subtotal:     subtotal,
		Taxes:        taxes,
		Total:        subtotal + taxes,
		Currency:     offering.Currency,
	}
}

// EstimateEvent prices an event enquiry: flat venue price, a per-guest
// surcharge above 100 guests, and optional catering per head.
func EstimateEvent(offering models.EventOffering, guests int, catering bool) float64 {
	total := offering.BasePrice
	if guests > SurchargeFreeGuests {
		total += float64(guests-SurchargeFreeGuests) * SurchargePerGuest
	}
	if catering {
		total += float64(guests) * CateringRatePerGuest
	}
	return total
}

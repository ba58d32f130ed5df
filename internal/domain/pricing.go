package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// gstRate is GSTRatePercent expressed as a fraction.
var gstRate = decimal.NewFromInt(GSTRatePercent).Div(decimal.NewFromInt(100))

// PricingBreakdown is the derived price of one booking attempt. It is never
// stored; callers recompute it whenever price, nights or room count change.
// Invariants: TotalPrice == BasePrice + GSTAmount,
// GSTAmount == round(BasePrice * 0.18) half away from zero.
type PricingBreakdown struct {
	BasePrice  int64
	GSTAmount  int64
	GSTRate    string
	TotalPrice int64
}

// Nights returns the ceiling of the whole-day difference between two dates.
// The difference is taken as an absolute value, so a reversed range still
// yields a non-negative count; rejecting reversed ranges is the date-range
// validator's job, not this function's.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}

	const day = 24 * time.Hour
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights
}

// ComputePricingBreakdown computes the base price, GST and total for a stay.
// Negative inputs are treated as zero contributions so a bad field can never
// surface a negative total; this is a display aid, not a ledger.
// Pure and deterministic: identical inputs always yield identical output.
func ComputePricingBreakdown(pricePerNight int64, nights, roomCount int) PricingBreakdown {
	if pricePerNight < 0 {
		pricePerNight = 0
	}
	if nights < 0 {
		nights = 0
	}
	if roomCount < 0 {
		roomCount = 0
	}

	basePrice := pricePerNight * int64(nights) * int64(roomCount)

	// decimal.Round rounds half away from zero, the standard currency rule.
	gstAmount := decimal.NewFromInt(basePrice).Mul(gstRate).Round(0).IntPart()

	return PricingBreakdown{
		BasePrice:  basePrice,
		GSTAmount:  gstAmount,
		GSTRate:    GSTRateLabel,
		TotalPrice: basePrice + gstAmount,
	}
}

package booking

import "math"

// PriceCalculator derives a booking total from a per-person rate.
// Implementations must be pure and deterministic.
type PriceCalculator interface {
	TotalPrice(perPersonRate float64, participants int) int64
}

// PerPersonPriceCalculator computes round(rate × participants) in whole
// currency units. Rounding is half away from zero (math.Round), so
// 89.99 × 2 = 179.98 rounds to 180.
type PerPersonPriceCalculator struct{}

func NewPerPersonPriceCalculator() *PerPersonPriceCalculator {
	return &PerPersonPriceCalculator{}
}

func (pc *PerPersonPriceCalculator) TotalPrice(perPersonRate float64, participants int) int64 {
	return int64(math.Round(perPersonRate * float64(participants)))
}

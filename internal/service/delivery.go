package service

import "carrental-backend/internal/domain"

// MinDeliveryWindowDays is the shortest delivery window the estimator
// accepts. Requests below it are rejected before any other processing.
const MinDeliveryWindowDays = 3

// RandSource supplies uniform random draws. Production wires *rand.Rand;
// tests inject a fixed sequence for determinism.
type RandSource interface {
	Intn(n int) int
}

// Brands with local logistics get the fast delivery band.
var fastDeliveryBrands = map[string]bool{
	"Tata":     true,
	"Mahindra": true,
	"Maruti":   true,
}

// DeliveryEstimator draws delivery-time estimates per brand. Every call
// draws fresh, so repeat estimates for the same brand vary the way
// real logistics would.
type DeliveryEstimator struct {
	rnd RandSource
}

func NewDeliveryEstimator(rnd RandSource) *DeliveryEstimator {
	return &DeliveryEstimator{rnd: rnd}
}

// Estimate returns delivery days in [3,7] for fast-delivery brands and
// [7,20] for everything else.
func (e *DeliveryEstimator) Estimate(brand string) int {
	if fastDeliveryBrands[brand] {
		return 3 + e.rnd.Intn(5)
	}
	return 7 + e.rnd.Intn(14)
}

// ValidateDeliveryWindow rejects windows shorter than the minimum.
func ValidateDeliveryWindow(days int) error {
	if days < MinDeliveryWindowDays {
		return domain.ErrDeliveryWindowTooShort
	}
	return nil
}

package pricing

// Discount and surcharge tiers. The multipliers compound in a fixed
// order: high-value, then loyalty, then aged stock, then the urgent
// delivery surcharge last. Reordering changes the final amount.
const (
	daysPerMonth = 30.0

	highValueThresholdRs = 20000.0
	highValueFactor      = 0.95

	loyaltyMinYears = 2
	loyaltyFactor   = 0.90

	agedStockMinDays = 180
	agedStockFactor  = 0.85

	urgentDeliveryMaxDays = 10
	urgentSurchargeFactor = 1.10
)

// Breakdown itemizes a quote step by step. A factor of 1.0 means the
// step did not fire.
type Breakdown struct {
	BaseCost        float64 `json:"base_cost"`
	HighValueFactor float64 `json:"high_value_factor"`
	LoyaltyFactor   float64 `json:"loyalty_factor"`
	AgedStockFactor float64 `json:"aged_stock_factor"`
	UrgentSurcharge float64 `json:"urgent_surcharge"`
	FinalCost       float64 `json:"final_cost"`
	DiscountApplied bool    `json:"discount_applied"`
}

// Quote computes the final rental cost from the monthly rent prorated by
// rental days, with the tiered discounts and the urgent-delivery
// surcharge applied in order. The returned flag reports whether any
// discount tier fired; the surcharge never sets it.
func Quote(monthlyRent float64, rentDays, loyaltyYears, stockDays, deliveryDays int) (float64, bool) {
	b := QuoteWithBreakdown(monthlyRent, rentDays, loyaltyYears, stockDays, deliveryDays)
	return b.FinalCost, b.DiscountApplied
}

// QuoteWithBreakdown computes the same quote and reports each factor.
func QuoteWithBreakdown(monthlyRent float64, rentDays, loyaltyYears, stockDays, deliveryDays int) Breakdown {
	b := Breakdown{
		BaseCost:        monthlyRent * float64(rentDays) / daysPerMonth,
		HighValueFactor: 1.0,
		LoyaltyFactor:   1.0,
		AgedStockFactor: 1.0,
		UrgentSurcharge: 1.0,
	}

	cost := b.BaseCost
	if cost > highValueThresholdRs {
		cost *= highValueFactor
		b.HighValueFactor = highValueFactor
		b.DiscountApplied = true
	}
	if loyaltyYears >= loyaltyMinYears {
		cost *= loyaltyFactor
		b.LoyaltyFactor = loyaltyFactor
		b.DiscountApplied = true
	}
	if stockDays > agedStockMinDays {
		cost *= agedStockFactor
		b.AgedStockFactor = agedStockFactor
		b.DiscountApplied = true
	}
	// Surcharge runs after all discounts regardless of whether any fired.
	if deliveryDays < urgentDeliveryMaxDays {
		cost *= urgentSurchargeFactor
		b.UrgentSurcharge = urgentSurchargeFactor
	}

	b.FinalCost = cost
	return b
}

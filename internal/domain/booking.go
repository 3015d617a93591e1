package domain

type BookingStatus string

const (
	BookingStatusCreated BookingStatus = "CREATED"
	BookingStatusPaid    BookingStatus = "PAID"
)

// MinAdvanceFraction is the share of the final cost that must be paid
// up front before a booking counts as paid.
const MinAdvanceFraction = 0.2

// Booking captures one rental attempt. Cost and delivery fields are
// fixed at creation time from a single estimator draw and a single
// pricing pass; MakeAdvancePayment is the only mutation afterwards.
type Booking struct {
	ID                  string        `json:"id"`
	Customer            Customer      `json:"customer"`
	VehicleID           string        `json:"vehicle_id"`
	RentDays            int           `json:"rent_days"`
	DesiredDeliveryDays int           `json:"desired_delivery_days"`
	DeliveryDays        int           `json:"delivery_days"`
	FinalCost           float64       `json:"final_cost"`
	DiscountApplied     bool          `json:"discount_applied"`
	AdvancePayment      float64       `json:"advance_payment"`
	Status              BookingStatus `json:"status"`
	CreatedOn           string        `json:"created_on"`
	UpdatedOn           string        `json:"updated_on"`
}

// MakeAdvancePayment records the advance and moves the booking to PAID.
// An amount below 20% of the final cost fails with ErrInsufficientAdvance
// and leaves the booking in CREATED; the caller may retry with a larger
// amount. Exactly 20% is accepted.
func (b *Booking) MakeAdvancePayment(amount float64) error {
	if amount < MinAdvanceFraction*b.FinalCost {
		return ErrInsufficientAdvance
	}
	b.AdvancePayment = amount
	b.Status = BookingStatusPaid
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingService struct {
	catalog   CatalogService
	estimator *DeliveryEstimator
	customers repository.CustomerRepository
	bookings  repository.BookingRepository
}

func NewBookingService(
	catalog CatalogService,
	estimator *DeliveryEstimator,
	customers repository.CustomerRepository,
	bookings repository.BookingRepository,
) BookingService {
	return &bookingService{
		catalog:   catalog,
		estimator: estimator,
		customers: customers,
		bookings:  bookings,
	}
}

// CreateBooking runs one estimator draw and one pricing pass and
// persists the result in CREATED state. The draw here is independent of
// any earlier feasibility check; when it exceeds the requested window,
// the delivery days are overridden down to the window.
func (s *bookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	// Window check comes first, before any cost computation.
	if err := ValidateDeliveryWindow(req.DesiredDeliveryDays); err != nil {
		return nil, err
	}

	v, err := s.catalog.Get(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Available {
		return nil, domain.ErrVehicleUnavailable
	}

	years, found, err := s.customers.LookupYears(ctx, req.Contact)
	if err != nil {
		return nil, fmt.Errorf("loyalty lookup for %s: %w", req.Contact, err)
	}
	if !found {
		// First booking for this contact: register with zero years.
		if err := s.customers.AppendCustomer(ctx, req.Contact, 0); err != nil {
			logger.Warn("Failed to register new customer", "contact", req.Contact, "error", err)
		}
		years = 0
	}

	deliveryDays := s.estimator.Estimate(v.Brand)
	if req.DesiredDeliveryDays < deliveryDays {
		deliveryDays = req.DesiredDeliveryDays
	}

	cost, discountApplied := pricing.Quote(v.MonthlyRentRs, req.RentDays, years, v.StockDays, deliveryDays)

	now := time.Now().UTC().Format(time.RFC3339)
	booking := &domain.Booking{
		ID: uuid.NewString(),
		Customer: domain.Customer{
			Name:             req.CustomerName,
			Contact:          req.Contact,
			YearsWithCompany: years,
		},
		VehicleID:           v.ID,
		RentDays:            req.RentDays,
		DesiredDeliveryDays: req.DesiredDeliveryDays,
		DeliveryDays:        deliveryDays,
		FinalCost:           cost,
		DiscountApplied:     discountApplied,
		Status:              domain.BookingStatusCreated,
		CreatedOn:           now,
		UpdatedOn:           now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	logger.Info("Booking created",
		"booking_id", booking.ID,
		"vehicle_id", v.ID,
		"final_cost", booking.FinalCost,
		"delivery_days", booking.DeliveryDays,
		"discount_applied", booking.DiscountApplied)
	return booking, nil
}

// PayAdvance validates the 20% threshold, records the payment, and
// flips the vehicle's availability. An insufficient amount leaves the
// booking in CREATED state so the caller can retry.
func (s *bookingService) PayAdvance(ctx context.Context, bookingID string, amount float64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusPaid {
		return nil, domain.ErrBookingAlreadyPaid
	}

	// The vehicle may have been taken by another booking since this one
	// was created. Refuse the payment before recording anything, so the
	// booking never reaches PAID without its availability flip.
	v, err := s.catalog.Get(booking.VehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Available {
		return nil, domain.ErrVehicleUnavailable
	}

	if err := booking.MakeAdvancePayment(amount); err != nil {
		return nil, err
	}
	booking.UpdatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	if err := s.catalog.MarkUnavailable(ctx, booking.VehicleID); err != nil {
		return nil, fmt.Errorf("mark vehicle %s unavailable: %w", booking.VehicleID, err)
	}

	logger.Info("Advance payment accepted",
		"booking_id", booking.ID,
		"vehicle_id", booking.VehicleID,
		"amount", amount)
	return booking, nil
}

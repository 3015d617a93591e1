package service

import (
	"context"

	"carrental-backend/internal/domain"
)

// FuelFilter narrows catalog queries by fuel type.
type FuelFilter string

const (
	FuelFilterEV     FuelFilter = "EV"
	FuelFilterPetrol FuelFilter = "PETROL"
	FuelFilterAll    FuelFilter = "ALL"
)

// ParseFuelFilter maps a query value onto a filter. Empty means ALL.
func ParseFuelFilter(s string) (FuelFilter, bool) {
	switch FuelFilter(s) {
	case "":
		return FuelFilterAll, true
	case FuelFilterEV, FuelFilterPetrol, FuelFilterAll:
		return FuelFilter(s), true
	}
	return "", false
}

// CatalogStats is a point-in-time availability summary.
type CatalogStats struct {
	Total           int
	Available       int
	AvailableEV     int
	AvailablePetrol int
}

type CatalogService interface {
	// Filter returns currently-available vehicles matching the fuel
	// filter and optional brand, in catalog insertion order.
	Filter(fuel FuelFilter, brand string) []domain.Vehicle
	// Brands returns the distinct brands among available vehicles for
	// the fuel filter, in first-seen order.
	Brands(fuel FuelFilter) []string
	Get(id string) (domain.Vehicle, error)
	// CheckDeliveryFeasible draws a fresh delivery estimate for the
	// vehicle's brand and reports whether it fits the desired window.
	CheckDeliveryFeasible(id string, desiredDays int) (estimate int, feasible bool, err error)
	// UrgentAlternatives rescans the full catalog under the fuel filter
	// only, drawing a fresh estimate per vehicle. An empty result is a
	// valid outcome, not an error.
	UrgentAlternatives(fuel FuelFilter, desiredDays int) []domain.Vehicle
	MarkUnavailable(ctx context.Context, id string) error
	Stats() CatalogStats
}

// CreateBookingRequest carries everything the booking flow needs;
// loyalty years are resolved internally from the customer store.
type CreateBookingRequest struct {
	CustomerName        string
	Contact             string
	VehicleID           string
	RentDays            int
	DesiredDeliveryDays int
}

type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error)
	PayAdvance(ctx context.Context, bookingID string, amount float64) (*domain.Booking, error)
}

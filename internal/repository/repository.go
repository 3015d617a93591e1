package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// VehicleRepository backs the in-memory catalog. The catalog is loaded
// once at startup; only the availability flip is written back.
type VehicleRepository interface {
	ListAll(ctx context.Context) ([]domain.Vehicle, error)
	MarkUnavailable(ctx context.Context, id string) error
}

// CustomerRepository is the loyalty record store: one append-only row
// per returning customer mapping a contact to years-with-company.
type CustomerRepository interface {
	// LookupYears returns the loyalty years for an exact contact match.
	// found is false for new customers. Malformed records are skipped
	// individually, never aborting the lookup.
	LookupYears(ctx context.Context, contact string) (years int, found bool, err error)
	AppendCustomer(ctx context.Context, contact string, years int) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// DeleteCreatedBefore removes bookings still in CREATED state older
	// than the cutoff. Used by the abandoned-booking purge job.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

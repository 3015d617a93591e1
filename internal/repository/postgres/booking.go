package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, customer_name, contact, loyalty_years, vehicle_id, rent_days,
	              desired_delivery_days, delivery_days, final_cost, discount_applied, advance_payment,
	              status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.Customer.Name, b.Customer.Contact, b.Customer.YearsWithCompany, b.VehicleID, b.RentDays,
		b.DesiredDeliveryDays, b.DeliveryDays, b.FinalCost, b.DiscountApplied, b.AdvancePayment,
		b.Status, b.CreatedOn, b.UpdatedOn)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT id, customer_name, contact, loyalty_years, vehicle_id, rent_days,
	              desired_delivery_days, delivery_days, final_cost, discount_applied, advance_payment,
	              status, created_on, updated_on
	          FROM bookings WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Customer.Name, &b.Customer.Contact, &b.Customer.YearsWithCompany, &b.VehicleID, &b.RentDays,
		&b.DesiredDeliveryDays, &b.DeliveryDays, &b.FinalCost, &b.DiscountApplied, &b.AdvancePayment,
		&b.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	b.CreatedOn = createdOn.Format(time.RFC3339)
	b.UpdatedOn = updatedOn.Format(time.RFC3339)
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET advance_payment = $1, status = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, b.AdvancePayment, b.Status, b.UpdatedOn, b.ID)
	return err
}

func (r *bookingRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM bookings WHERE status = $1 AND created_on < $2`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusCreated, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

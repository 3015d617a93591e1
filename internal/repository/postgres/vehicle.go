package postgres

import (
	"context"
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// ListAll returns the full catalog in insertion order (the seq column
// preserves seed order, which callers rely on for result ordering).
func (r *vehicleRepository) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, model, brand, mileage, monthly_rent, available, stock_days, origin, fuel_type
	          FROM vehicles ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Model, &v.Brand, &v.Mileage, &v.MonthlyRentRs, &v.Available, &v.StockDays, &v.Origin, &v.FuelType); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) MarkUnavailable(ctx context.Context, id string) error {
	query := `UPDATE vehicles SET available = FALSE WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

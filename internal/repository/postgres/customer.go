package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// LookupYears scans every record for the contact and returns the first
// one with a parseable years value. The table carries the legacy flat
// record format (years stored as text), so individual malformed rows
// are skipped rather than failing the whole lookup.
func (r *customerRepository) LookupYears(ctx context.Context, contact string) (int, bool, error) {
	query := `SELECT years FROM customers WHERE contact = $1`
	rows, err := r.db.QueryContext(ctx, query, contact)
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			logger.Warn("Skipping unreadable customer record", "contact", contact, "error", err)
			continue
		}
		years, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || years < 0 {
			logger.Warn("Skipping malformed customer record", "contact", contact, "years", raw)
			continue
		}
		return years, true, nil
	}
	return 0, false, rows.Err()
}

func (r *customerRepository) AppendCustomer(ctx context.Context, contact string, years int) error {
	query := `INSERT INTO customers (contact, years) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, contact, strconv.Itoa(years))
	return err
}

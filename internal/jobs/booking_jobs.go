package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// PurgeAbandonedBookings removes bookings that never received an
// advance payment within the configured window. Those vehicles were
// never marked unavailable, so nothing else needs to be undone.
func (jr *JobRunner) PurgeAbandonedBookings() {
	jr.runWithRecovery("PurgeAbandonedBookings", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-time.Duration(jr.config.Booking.AbandonedAfterHours) * time.Hour)

		count, err := jr.bookings.DeleteCreatedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge abandoned bookings", "error", err)
			return
		}
		logger.Info("Purged abandoned bookings", "count", count, "cutoff", cutoff.Format(time.RFC3339))
	})
}

// InventorySnapshot logs a point-in-time availability summary of the
// catalog for operational visibility.
func (jr *JobRunner) InventorySnapshot() {
	jr.runWithRecovery("InventorySnapshot", func() {
		stats := jr.catalog.Stats()
		logger.Info("Catalog inventory snapshot",
			"total", stats.Total,
			"available", stats.Available,
			"available_ev", stats.AvailableEV,
			"available_petrol", stats.AvailablePetrol)
	})
}

package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One row per sold seat per showtime; concurrent claims of the same
	// seat collide here and the losing transaction rolls back
	err := db.Exec(`
		ALTER TABLE showtime_seats
		ADD CONSTRAINT IF NOT EXISTS unique_seat_per_showtime
		UNIQUE (showtime_id, seat_label);
	`).Error
	if err != nil {
		return err
	}

	// Booking references must be globally unique
	err = db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT IF NOT EXISTS unique_booking_reference
		UNIQUE (reference);
	`).Error
	if err != nil {
		return err
	}

	// Seat availability reads filter by showtime
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_showtime_seats_showtime_id
		ON showtime_seats (showtime_id);
	`).Error
	if err != nil {
		return err
	}

	// Booking history queries filter by user
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

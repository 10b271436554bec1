package database

import (
	"strings"

	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Exclusion constraint prevents two overlapping non-cancelled bookings on the
	// same court and date, even if two sessions pass the client-side check at once.
	err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist;`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT no_overlapping_bookings
		EXCLUDE USING gist (
			court_id WITH =,
			booking_date WITH =,
			int4range(start_hour, end_hour) WITH &&
		) WHERE (status <> 'CANCELLED');
	`).Error
	if err != nil && !isDuplicateConstraint(err) {
		return err
	}

	// Index for slot availability lookups by court and date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_court_date
		ON bookings (court_id, booking_date);
	`).Error
	if err != nil {
		return err
	}

	// Index for equipment line lookups by booking
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_equipment_booking_id
		ON booking_equipment (booking_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

// isDuplicateConstraint reports whether the error is Postgres 42710 (object
// already exists); ALTER TABLE ADD CONSTRAINT has no IF NOT EXISTS form.
func isDuplicateConstraint(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "42710"))
}

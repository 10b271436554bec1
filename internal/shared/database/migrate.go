package database

import (
	"courtly/internal/bookings"
	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/internal/pricing"
	"courtly/internal/users"
	"courtly/internal/waitlist"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&courts.Court{},
		&equipment.Equipment{},
		&coaches.Coach{},
		&coaches.CoachAvailability{},
		&pricing.PricingRule{},
		&bookings.Booking{},
		&bookings.BookingEquipment{},
		&waitlist.WaitlistEntry{},
	)
}

package waitlist

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry records a user's interest in a court time range that was
// taken when they tried to book. Entries are informational; freed slots
// are not assigned automatically.
type WaitlistEntry struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_waitlist_user_slot,priority:1"`
	CourtID     uuid.UUID `json:"court_id" gorm:"type:uuid;not null;uniqueIndex:idx_waitlist_user_slot,priority:2"`
	BookingDate time.Time `json:"booking_date" gorm:"type:date;not null;uniqueIndex:idx_waitlist_user_slot,priority:3"`
	StartHour   int       `json:"start_hour" gorm:"not null;uniqueIndex:idx_waitlist_user_slot,priority:4"`
	EndHour     int       `json:"end_hour" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

// JoinWaitlistRequest represents a request to join the waitlist for a slot
type JoinWaitlistRequest struct {
	CourtID   uuid.UUID `json:"court_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required,hhmm"`
	EndTime   string    `json:"end_time" validate:"required,hhmm"`
}

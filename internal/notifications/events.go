package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the booking lifecycle events carried over Kafka
type EventType string

const (
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent is the wire payload for a booking lifecycle event
type BookingEvent struct {
	Type       EventType  `json:"type"`
	BookingID  uuid.UUID  `json:"booking_id"`
	UserID     uuid.UUID  `json:"user_id"`
	CourtID    uuid.UUID  `json:"court_id"`
	CoachID    *uuid.UUID `json:"coach_id,omitempty"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	TotalPrice float64    `json:"total_price"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one court to the same partition so
// consumers see a court's bookings in order.
func (e *BookingEvent) PartitionKey() string {
	return e.CourtID.String()
}

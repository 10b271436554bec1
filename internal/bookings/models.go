package bookings

import (
	"time"

	"courtly/internal/pricing"

	"github.com/google/uuid"
)

// BookingStatus enumerates the booking lifecycle states
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BlocksSlots reports whether a booking in this status keeps its time range
// unavailable to other users. Only cancellation frees the slots.
func (s BookingStatus) BlocksSlots() bool {
	return s != StatusCancelled
}

// Booking is one confirmed court reservation. The price breakdown is a
// frozen snapshot computed at submission time; rules changing later never
// alter historical bookings.
type Booking struct {
	ID             uuid.UUID          `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID         uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;index"`
	CourtID        uuid.UUID          `json:"court_id" gorm:"type:uuid;not null"`
	CoachID        *uuid.UUID         `json:"coach_id" gorm:"type:uuid;default:null"`
	BookingDate    time.Time          `json:"booking_date" gorm:"type:date;not null"`
	StartTime      string             `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime        string             `json:"end_time" gorm:"type:varchar(5);not null"`
	StartHour      int                `json:"start_hour" gorm:"not null"`
	EndHour        int                `json:"end_hour" gorm:"not null"`
	BasePrice      float64            `json:"base_price" gorm:"not null"`
	TotalPrice     float64            `json:"total_price" gorm:"not null"`
	PriceBreakdown pricing.Breakdown  `json:"price_breakdown" gorm:"type:jsonb;serializer:json"`
	Status         BookingStatus      `json:"status" gorm:"type:varchar(20);default:'CONFIRMED';check:status IN ('CONFIRMED', 'CANCELLED', 'COMPLETED')"`
	Equipment      []BookingEquipment `json:"equipment" gorm:"foreignKey:BookingID"`
	CreatedAt      time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingEquipment is one rented equipment line attached to a booking.
// The hourly rate is snapshotted so later catalog edits never change what
// a booking was charged.
type BookingEquipment struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID   uuid.UUID `json:"booking_id" gorm:"type:uuid;not null;index"`
	EquipmentID uuid.UUID `json:"equipment_id" gorm:"type:uuid;not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	HourlyRate  float64   `json:"hourly_rate" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (BookingEquipment) TableName() string {
	return "booking_equipment"
}

// CreateBookingRequest represents a booking submission
type CreateBookingRequest struct {
	CourtID   uuid.UUID                    `json:"court_id" validate:"required"`
	Date      string                       `json:"date" validate:"required"`
	StartTime string                       `json:"start_time" validate:"required,hhmm"`
	EndTime   string                       `json:"end_time" validate:"required,hhmm"`
	Equipment []pricing.QuoteEquipmentLine `json:"equipment,omitempty" validate:"omitempty,dive"`
	CoachID   *uuid.UUID                   `json:"coach_id,omitempty"`
}

// ListBookingsQuery carries pagination for a user's booking history
type ListBookingsQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// SlotStatus describes one hourly slot in an availability grid
type SlotStatus struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
	IsPeak   bool   `json:"is_peak"`
}

// AvailabilityResponse is the slot grid for one court and date
type AvailabilityResponse struct {
	CourtID uuid.UUID    `json:"court_id"`
	Date    string       `json:"date"`
	Slots   []SlotStatus `json:"slots"`
}

// PaginatedBookings wraps a page of a user's bookings
type PaginatedBookings struct {
	Bookings   []Booking `json:"bookings"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

package coaches

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek is a lowercase weekday name as stored on availability windows
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// WeekdayOf maps a calendar date to its availability day name
func WeekdayOf(date time.Time) DayOfWeek {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Coach represents a bookable coach
type Coach struct {
	ID           uuid.UUID           `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name         string              `json:"name" gorm:"not null;size:100"`
	Specialty    string              `json:"specialty" gorm:"size:100"`
	HourlyRate   float64             `json:"hourly_rate" gorm:"not null;check:hourly_rate >= 0"`
	IsActive     bool                `json:"is_active" gorm:"default:true"`
	Availability []CoachAvailability `json:"availability" gorm:"foreignKey:CoachID"`
	CreatedAt    time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Coach) TableName() string {
	return "coaches"
}

// CoachAvailability is a weekly recurring window during which a coach works
type CoachAvailability struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CoachID   uuid.UUID `json:"coach_id" gorm:"type:uuid;not null;index"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"type:varchar(10);not null"`
	StartTime string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime   string    `json:"end_time" gorm:"type:varchar(5);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CoachAvailability) TableName() string {
	return "coach_availability"
}

// AvailabilityWindowRequest is one weekly window in a coach create/update payload
type AvailabilityWindowRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// CreateCoachRequest represents the admin create payload
type CreateCoachRequest struct {
	Name         string                      `json:"name" validate:"required,min=2,max=100"`
	Specialty    string                      `json:"specialty" validate:"max=100"`
	HourlyRate   float64                     `json:"hourly_rate" validate:"gte=0"`
	Availability []AvailabilityWindowRequest `json:"availability" validate:"dive"`
}

// UpdateCoachRequest represents the admin update payload. Supplying
// availability replaces all existing windows for the coach.
type UpdateCoachRequest struct {
	Name         *string                     `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Specialty    *string                     `json:"specialty,omitempty" validate:"omitempty,max=100"`
	HourlyRate   *float64                    `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool                       `json:"is_active,omitempty"`
	Availability []AvailabilityWindowRequest `json:"availability,omitempty" validate:"omitempty,dive"`
}

// EligibleCoachesQuery carries the booking window coaches are matched against
type EligibleCoachesQuery struct {
	Date      string `form:"date" validate:"required"`
	StartTime string `form:"start_time" validate:"required,hhmm"`
	EndTime   string `form:"end_time" validate:"required,hhmm"`
}

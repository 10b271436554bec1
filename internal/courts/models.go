package courts

import (
	"time"

	"github.com/google/uuid"
)

// CourtType enumerates the supported court kinds
type CourtType string

const (
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

func (t CourtType) IsValid() bool {
	switch t {
	case CourtTypeIndoor, CourtTypeOutdoor:
		return true
	}
	return false
}

func (t CourtType) String() string {
	return string(t)
}

// Court represents a bookable court
type Court struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name           string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	CourtType      CourtType `json:"court_type" gorm:"type:varchar(20);check:court_type IN ('indoor', 'outdoor');not null"`
	BaseHourlyRate float64   `json:"base_hourly_rate" gorm:"not null;check:base_hourly_rate >= 0"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Court) TableName() string {
	return "courts"
}

// CreateCourtRequest represents the admin create payload
type CreateCourtRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	CourtType      string  `json:"court_type" validate:"required,oneof=indoor outdoor"`
	BaseHourlyRate float64 `json:"base_hourly_rate" validate:"required,gte=0"`
}

// UpdateCourtRequest represents the admin update payload
type UpdateCourtRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	CourtType      *string  `json:"court_type,omitempty" validate:"omitempty,oneof=indoor outdoor"`
	BaseHourlyRate *float64 `json:"base_hourly_rate,omitempty" validate:"omitempty,gte=0"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

// CourtResponse represents court data in responses
type CourtResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CourtType      string    `json:"court_type"`
	BaseHourlyRate float64   `json:"base_hourly_rate"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToResponse converts a Court to its response shape
func (c *Court) ToResponse() CourtResponse {
	return CourtResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		CourtType:      string(c.CourtType),
		BaseHourlyRate: c.BaseHourlyRate,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

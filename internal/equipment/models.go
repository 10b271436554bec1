package equipment

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentType enumerates rental equipment kinds
type EquipmentType string

const (
	EquipmentTypeRacket      EquipmentType = "racket"
	EquipmentTypeShoes       EquipmentType = "shoes"
	EquipmentTypeShuttlecock EquipmentType = "shuttlecock"
	EquipmentTypeOther       EquipmentType = "other"
)

func (t EquipmentType) IsValid() bool {
	switch t {
	case EquipmentTypeRacket, EquipmentTypeShoes, EquipmentTypeShuttlecock, EquipmentTypeOther:
		return true
	}
	return false
}

// Equipment represents a rentable equipment item
type Equipment struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name          string        `json:"name" gorm:"uniqueIndex;not null;size:100"`
	EquipmentType EquipmentType `json:"equipment_type" gorm:"type:varchar(20);check:equipment_type IN ('racket', 'shoes', 'shuttlecock', 'other');not null"`
	TotalQuantity int           `json:"total_quantity" gorm:"not null;check:total_quantity >= 0"`
	HourlyRate    float64       `json:"hourly_rate" gorm:"not null;check:hourly_rate >= 0"`
	IsActive      bool          `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Equipment) TableName() string {
	return "equipment"
}

// ClampQuantity bounds a requested rental quantity into [0, total_quantity]
func (e *Equipment) ClampQuantity(quantity int) int {
	if quantity < 0 {
		return 0
	}
	if quantity > e.TotalQuantity {
		return e.TotalQuantity
	}
	return quantity
}

// CreateEquipmentRequest represents the admin create payload
type CreateEquipmentRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	EquipmentType string  `json:"equipment_type" validate:"required,oneof=racket shoes shuttlecock other"`
	TotalQuantity int     `json:"total_quantity" validate:"gte=0"`
	HourlyRate    float64 `json:"hourly_rate" validate:"gte=0"`
}

// UpdateEquipmentRequest represents the admin update payload
type UpdateEquipmentRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	TotalQuantity *int     `json:"total_quantity,omitempty" validate:"omitempty,gte=0"`
	HourlyRate    *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

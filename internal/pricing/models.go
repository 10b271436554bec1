package pricing

import (
	"time"

	"courtly/internal/courts"

	"github.com/google/uuid"
)

// RuleType enumerates the pricing rule kinds
type RuleType string

const (
	RuleTypeBase      RuleType = "base"
	RuleTypeCourtType RuleType = "court_type"
	RuleTypePeakHours RuleType = "peak_hours"
	RuleTypeWeekend   RuleType = "weekend"
)

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeBase, RuleTypeCourtType, RuleTypePeakHours, RuleTypeWeekend:
		return true
	}
	return false
}

// PricingRule adjusts the court price for bookings it applies to. Rules are
// applied in ascending priority order and each rule compounds on the output
// of the previous one.
type PricingRule struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name               string    `json:"name" gorm:"not null;size:100"`
	RuleType           RuleType  `json:"rule_type" gorm:"type:varchar(20);check:rule_type IN ('base', 'court_type', 'peak_hours', 'weekend');not null"`
	Multiplier         float64   `json:"multiplier" gorm:"not null;default:1;check:multiplier >= 0"`
	FlatFee            float64   `json:"flat_fee" gorm:"not null;default:0"`
	StartHour          *int      `json:"start_hour" gorm:"default:null"`
	EndHour            *int      `json:"end_hour" gorm:"default:null"`
	AppliesToCourtType *string   `json:"applies_to_court_type" gorm:"type:varchar(20);default:null"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	Priority           int       `json:"priority" gorm:"not null;default:0"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PricingRule) TableName() string {
	return "pricing_rules"
}

// AppliedRule records one rule's contribution inside a price breakdown
type AppliedRule struct {
	Name       string   `json:"name"`
	Type       RuleType `json:"type"`
	Multiplier float64  `json:"multiplier"`
	FlatFee    float64  `json:"flat_fee"`
	Effect     float64  `json:"effect"`
}

// Breakdown is the itemized result of a price calculation. Bookings store
// the breakdown computed at submission time and never recompute it.
type Breakdown struct {
	BaseCourtPrice float64       `json:"base_court_price"`
	AppliedRules   []AppliedRule `json:"applied_rules"`
	EquipmentTotal float64       `json:"equipment_total"`
	CoachFee       float64       `json:"coach_fee"`
	Subtotal       float64       `json:"subtotal"`
	Total          float64       `json:"total"`
}

// CreatePricingRuleRequest represents the admin create payload
type CreatePricingRuleRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=100"`
	RuleType           string  `json:"rule_type" validate:"required,oneof=base court_type peak_hours weekend"`
	Multiplier         float64 `json:"multiplier" validate:"gte=0"`
	FlatFee            float64 `json:"flat_fee"`
	StartHour          *int    `json:"start_hour,omitempty" validate:"omitempty,gte=0,lte=23"`
	EndHour            *int    `json:"end_hour,omitempty" validate:"omitempty,gte=1,lte=24"`
	AppliesToCourtType *string `json:"applies_to_court_type,omitempty" validate:"omitempty,oneof=indoor outdoor"`
	Priority           int     `json:"priority"`
}

// UpdatePricingRuleRequest represents the admin update payload
type UpdatePricingRuleRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Multiplier         *float64 `json:"multiplier,omitempty" validate:"omitempty,gte=0"`
	FlatFee            *float64 `json:"flat_fee,omitempty"`
	StartHour          *int     `json:"start_hour,omitempty" validate:"omitempty,gte=0,lte=23"`
	EndHour            *int     `json:"end_hour,omitempty" validate:"omitempty,gte=1,lte=24"`
	AppliesToCourtType *string  `json:"applies_to_court_type,omitempty" validate:"omitempty,oneof=indoor outdoor"`
	IsActive           *bool    `json:"is_active,omitempty"`
	Priority           *int     `json:"priority,omitempty"`
}

// QuoteEquipmentLine is one equipment selection in a quote request
type QuoteEquipmentLine struct {
	EquipmentID uuid.UUID `json:"equipment_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=1"`
}

// QuoteRequest asks for an itemized price without creating a booking
type QuoteRequest struct {
	CourtID   uuid.UUID            `json:"court_id" validate:"required"`
	Date      string               `json:"date" validate:"required"`
	StartTime string               `json:"start_time" validate:"required,hhmm"`
	EndTime   string               `json:"end_time" validate:"required,hhmm"`
	Equipment []QuoteEquipmentLine `json:"equipment,omitempty" validate:"omitempty,dive"`
	CoachID   *uuid.UUID           `json:"coach_id,omitempty"`
}

// appliesTo reports whether this rule adjusts a booking with the given
// court type, weekend flag and starting hour. Base rules never apply as an
// adjustment since the base rate is already the fold's starting point.
func (r PricingRule) appliesTo(courtType courts.CourtType, isWeekend bool, bookingHour int) bool {
	switch r.RuleType {
	case RuleTypeBase:
		return false
	case RuleTypeCourtType:
		return r.AppliesToCourtType != nil && courts.CourtType(*r.AppliesToCourtType) == courtType
	case RuleTypePeakHours:
		if r.StartHour == nil || r.EndHour == nil {
			return false
		}
		return bookingHour >= *r.StartHour && bookingHour < *r.EndHour
	case RuleTypeWeekend:
		return isWeekend
	}
	return false
}

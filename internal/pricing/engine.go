package pricing

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
)

var (
	ErrMalformedTime       = errors.New("malformed time, expected HH:MM")
	ErrNonPositiveDuration = errors.New("booking duration must be positive")
)

// EquipmentLine pairs an equipment item with the quantity being rented
type EquipmentLine struct {
	Equipment equipment.Equipment
	Quantity  int
}

// parseClock splits an "HH:MM" string into hour and minute components
func parseClock(t string) (int, int, error) {
	hh, mm, found := strings.Cut(t, ":")
	if !found {
		return 0, 0, ErrMalformedTime
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, ErrMalformedTime
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, ErrMalformedTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrMalformedTime
	}
	return hour, minute, nil
}

// Calculate produces the itemized price for a booking window on a court.
//
// Active rules are sorted ascending by priority (stable, so ties keep their
// input order) and folded sequentially over the base price: each applicable
// rule multiplies the running price and adds its flat fee, so later rules
// compound on the output of earlier ones. Equipment and coach charges are
// added after the fold and are not affected by rules.
func Calculate(
	court courts.Court,
	date time.Time,
	startTime, endTime string,
	rules []PricingRule,
	equipmentLines []EquipmentLine,
	coach *coaches.Coach,
) (*Breakdown, error) {
	startHour, startMin, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	endHour, endMin, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	duration := (float64(endHour) + float64(endMin)/60) - (float64(startHour) + float64(startMin)/60)
	if duration <= 0 {
		return nil, ErrNonPositiveDuration
	}

	basePrice := court.BaseHourlyRate * duration

	active := make([]PricingRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})

	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	currentPrice := basePrice
	appliedRules := make([]AppliedRule, 0)
	for _, rule := range active {
		if !rule.appliesTo(court.CourtType, isWeekend, startHour) {
			continue
		}
		effect := currentPrice*(rule.Multiplier-1) + rule.FlatFee
		currentPrice = currentPrice*rule.Multiplier + rule.FlatFee
		appliedRules = append(appliedRules, AppliedRule{
			Name:       rule.Name,
			Type:       rule.RuleType,
			Multiplier: rule.Multiplier,
			FlatFee:    rule.FlatFee,
			Effect:     effect,
		})
	}

	equipmentTotal := 0.0
	for _, line := range equipmentLines {
		equipmentTotal += line.Equipment.HourlyRate * float64(line.Quantity) * duration
	}

	coachFee := 0.0
	if coach != nil {
		coachFee = coach.HourlyRate * duration
	}

	return &Breakdown{
		BaseCourtPrice: basePrice,
		AppliedRules:   appliedRules,
		EquipmentTotal: equipmentTotal,
		CoachFee:       coachFee,
		Subtotal:       currentPrice,
		Total:          currentPrice + equipmentTotal + coachFee,
	}, nil
}

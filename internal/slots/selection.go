package slots

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastDate            = errors.New("booking date cannot be in the past")
	ErrIncompleteSelection = errors.New("selection requires a date, court and time range")
)

// EquipmentChoice is one equipment line in an in-progress selection
type EquipmentChoice struct {
	EquipmentID uuid.UUID
	Quantity    int
}

// Selection is the in-progress booking a user assembles step by step.
// Values are immutable; every transition returns a new Selection so each
// reset rule lives in exactly one place.
type Selection struct {
	Date      *time.Time
	CourtID   *uuid.UUID
	StartTime string
	EndTime   string
	Equipment []EquipmentChoice
	CoachID   *uuid.UUID
}

// WithDate picks a booking date. Changing the date invalidates any chosen
// time range, since slot conflicts are looked up per date. Dates before
// today are rejected; today is passed in by the caller so the transition
// stays deterministic.
func (s Selection) WithDate(date, today time.Time) (Selection, error) {
	day := date.Truncate(24 * time.Hour)
	if day.Before(today.Truncate(24 * time.Hour)) {
		return s, ErrPastDate
	}
	next := s
	next.Date = &day
	next.StartTime = ""
	next.EndTime = ""
	return next, nil
}

// WithCourt picks a court. Changing the court invalidates any chosen time
// range, since slot conflicts are looked up per court.
func (s Selection) WithCourt(courtID uuid.UUID) Selection {
	next := s
	next.CourtID = &courtID
	next.StartTime = ""
	next.EndTime = ""
	return next
}

// ClickSlot applies one click on the slot grid. The protocol favors
// extending the end boundary forward, restarts the range on a click at or
// before the current start, and never lets a range straddle a booked hour.
// Clicks that would violate those rules leave the selection unchanged.
func (s Selection) ClickSlot(slot string, booked []BookedWindow, closeHour int) Selection {
	if IsBooked(slot, booked) {
		return s
	}

	hour := HourOf(slot)
	next := s

	switch {
	case s.StartTime == "":
		next.StartTime = slot
		next.EndTime = Label(min(hour+1, closeHour))

	case slot == s.StartTime:
		next.StartTime = ""
		next.EndTime = ""

	case hour > HourOf(s.StartTime):
		for h := HourOf(s.StartTime); h < hour; h++ {
			if IsBooked(Label(h), booked) {
				return s
			}
		}
		next.EndTime = Label(hour + 1)

	default:
		next.StartTime = slot
		next.EndTime = Label(min(hour+1, closeHour))
	}
	return next
}

// WithEquipment sets the rented quantity for one equipment item, clamped
// into [0, totalQuantity]. A clamped quantity of zero removes the line.
// Equipment edits never reset the date, court or time range.
func (s Selection) WithEquipment(equipmentID uuid.UUID, quantity, totalQuantity int) Selection {
	if quantity < 0 {
		quantity = 0
	}
	if quantity > totalQuantity {
		quantity = totalQuantity
	}

	next := s
	next.Equipment = make([]EquipmentChoice, 0, len(s.Equipment)+1)
	for _, choice := range s.Equipment {
		if choice.EquipmentID != equipmentID {
			next.Equipment = append(next.Equipment, choice)
		}
	}
	if quantity > 0 {
		next.Equipment = append(next.Equipment, EquipmentChoice{EquipmentID: equipmentID, Quantity: quantity})
	}
	return next
}

// WithCoach sets or clears the chosen coach
func (s Selection) WithCoach(coachID *uuid.UUID) Selection {
	next := s
	next.CoachID = coachID
	return next
}

// Complete reports whether the selection carries everything a submission
// needs: a date, a court and a full time range.
func (s Selection) Complete() error {
	if s.Date == nil || s.CourtID == nil || s.StartTime == "" || s.EndTime == "" {
		return ErrIncompleteSelection
	}
	return nil
}

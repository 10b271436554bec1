// Package slots models the hourly booking grid for a court day and the
// step-by-step selection a user builds before submitting a booking. All
// functions here are pure over caller-supplied data and perform no I/O.
package slots

import (
	"fmt"
	"strconv"
	"strings"
)

// Peak hours are a fixed facility policy, [start, end) on the hour
const (
	PeakStartHour = 18
	PeakEndHour   = 21
)

// BookedWindow is the hour span of an existing non-cancelled booking
type BookedWindow struct {
	StartHour int
	EndHour   int
}

// HourOf extracts the hour from an "HH:00" slot label. Returns -1 for
// labels it cannot parse.
func HourOf(slot string) int {
	hh, _, found := strings.Cut(slot, ":")
	if !found {
		return -1
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return -1
	}
	return hour
}

// OnHourGrid reports whether value is a whole-hour clock time such as
// "09:00". Requests carrying off-grid times like "10:30" would silently
// widen to the full hour, so the API rejects them up front.
func OnHourGrid(value string) bool {
	hh, mm, found := strings.Cut(value, ":")
	if !found || len(hh) != 2 || mm != "00" {
		return false
	}
	hour, err := strconv.Atoi(hh)
	return err == nil && hour >= 0 && hour <= 23
}

// Label formats an hour as an "HH:00" slot label
func Label(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Generate returns the ordered candidate slots for a day, one per hour
// from openHour up to but excluding closeHour.
func Generate(openHour, closeHour int) []string {
	candidates := make([]string, 0, max(closeHour-openHour, 0))
	for hour := openHour; hour < closeHour; hour++ {
		candidates = append(candidates, Label(hour))
	}
	return candidates
}

// IsBooked reports whether the slot's hour falls inside any existing
// booking window on the same court and date.
func IsBooked(slot string, bookings []BookedWindow) bool {
	hour := HourOf(slot)
	for _, window := range bookings {
		if hour >= window.StartHour && hour < window.EndHour {
			return true
		}
	}
	return false
}

// IsPeak reports whether the slot falls inside the facility's peak hours
func IsPeak(slot string) bool {
	hour := HourOf(slot)
	return hour >= PeakStartHour && hour < PeakEndHour
}

// InRange reports whether the slot falls inside the half-open selection
// [start, end). Empty boundaries never match.
func InRange(slot, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	hour := HourOf(slot)
	return hour >= HourOf(start) && hour < HourOf(end)
}

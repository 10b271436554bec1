package coaches

import (
	"strconv"
	"strings"
	"time"
)

// hourOf extracts the hour component from an "HH:MM" string. Minutes are
// ignored when matching availability windows, since bookings always start
// and end on the hour.
func hourOf(t string) int {
	idx := strings.IndexByte(t, ':')
	if idx < 0 {
		idx = len(t)
	}
	h, err := strconv.Atoi(t[:idx])
	if err != nil {
		return -1
	}
	return h
}

// CoversWindow reports whether this availability window fully contains the
// booking window on the given date. The window must be on the same weekday
// and the booking must start no earlier and end no later than the window.
func (a CoachAvailability) CoversWindow(date time.Time, startTime, endTime string) bool {
	if a.DayOfWeek != WeekdayOf(date) {
		return false
	}
	startHour := hourOf(startTime)
	endHour := hourOf(endTime)
	if startHour < 0 || endHour < 0 {
		return false
	}
	return startHour >= hourOf(a.StartTime) && endHour <= hourOf(a.EndTime)
}

// IsEligible reports whether the coach can take a booking spanning
// startTime to endTime on the given date. A coach qualifies when any single
// availability window covers the whole booking.
func (c *Coach) IsEligible(date time.Time, startTime, endTime string) bool {
	if !c.IsActive {
		return false
	}
	for _, window := range c.Availability {
		if window.CoversWindow(date, startTime, endTime) {
			return true
		}
	}
	return false
}

// FilterEligible returns the coaches able to take the given booking window,
// preserving input order.
func FilterEligible(coaches []Coach, date time.Time, startTime, endTime string) []Coach {
	eligible := make([]Coach, 0)
	for i := range coaches {
		if coaches[i].IsEligible(date, startTime, endTime) {
			eligible = append(eligible, coaches[i])
		}
	}
	return eligible
}

package coaches_test

import (
	"testing"
	"time"

	"courtly/internal/coaches"

	"github.com/stretchr/testify/require"
)

func mondayCoach() coaches.Coach {
	return coaches.Coach{
		Name:       "Coach Sarah",
		HourlyRate: 35,
		IsActive:   true,
		Availability: []coaches.CoachAvailability{
			{DayOfWeek: coaches.Monday, StartTime: "09:00", EndTime: "12:00"},
		},
	}
}

func TestIsEligibleWithinWindow(t *testing.T) {
	coach := mondayCoach()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	require.True(t, coach.IsEligible(monday, "09:00", "12:00"))
	require.True(t, coach.IsEligible(monday, "10:00", "11:00"))
	require.False(t, coach.IsEligible(monday, "08:00", "10:00"), "starts before window")
	require.False(t, coach.IsEligible(monday, "11:00", "13:00"), "ends after window")
}

func TestIsEligibleWrongWeekday(t *testing.T) {
	coach := mondayCoach()
	tuesday := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	require.False(t, coach.IsEligible(tuesday, "10:00", "11:00"))
}

func TestIsEligibleRequiresSingleCoveringWindow(t *testing.T) {
	// Two adjacent windows do not merge; the booking must fit in one.
	coach := coaches.Coach{
		Name:     "Coach Dmitri",
		IsActive: true,
		Availability: []coaches.CoachAvailability{
			{DayOfWeek: coaches.Monday, StartTime: "09:00", EndTime: "11:00"},
			{DayOfWeek: coaches.Monday, StartTime: "11:00", EndTime: "13:00"},
		},
	}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	require.True(t, coach.IsEligible(monday, "09:00", "11:00"))
	require.True(t, coach.IsEligible(monday, "11:00", "13:00"))
	require.False(t, coach.IsEligible(monday, "10:00", "12:00"))
}

func TestIsEligibleInactiveOrNoWindows(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	inactive := mondayCoach()
	inactive.IsActive = false
	require.False(t, inactive.IsEligible(monday, "10:00", "11:00"))

	bare := coaches.Coach{Name: "New Coach", IsActive: true}
	require.False(t, bare.IsEligible(monday, "10:00", "11:00"))
}

func TestFilterEligiblePreservesOrder(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	a := mondayCoach()
	a.Name = "A"
	b := mondayCoach()
	b.Name = "B"
	c := coaches.Coach{Name: "C", IsActive: true}

	eligible := coaches.FilterEligible([]coaches.Coach{a, c, b}, monday, "10:00", "11:00")
	require.Len(t, eligible, 2)
	require.Equal(t, "A", eligible[0].Name)
	require.Equal(t, "B", eligible[1].Name)
}

func TestWeekdayOf(t *testing.T) {
	require.Equal(t, coaches.Saturday, coaches.WeekdayOf(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, coaches.Sunday, coaches.WeekdayOf(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, coaches.Monday, coaches.WeekdayOf(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
}

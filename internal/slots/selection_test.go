package slots_test

import (
	"testing"
	"time"

	"courtly/internal/slots"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const closeHour = 22

func TestWithDateClearsTimesAndRejectsPast(t *testing.T) {
	today := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	courtID := uuid.New()

	sel := slots.Selection{}.WithCourt(courtID)
	sel = sel.ClickSlot("10:00", nil, closeHour)
	require.Equal(t, "10:00", sel.StartTime)

	sel, err := sel.WithDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), today)
	require.NoError(t, err)
	require.Empty(t, sel.StartTime)
	require.Empty(t, sel.EndTime)
	require.NotNil(t, sel.Date)

	_, err = sel.WithDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), today)
	require.ErrorIs(t, err, slots.ErrPastDate)

	// Same day is allowed even later in the day
	_, err = sel.WithDate(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), today)
	require.NoError(t, err)
}

func TestWithCourtClearsTimes(t *testing.T) {
	sel := slots.Selection{StartTime: "10:00", EndTime: "11:00"}
	sel = sel.WithCourt(uuid.New())
	require.Empty(t, sel.StartTime)
	require.Empty(t, sel.EndTime)
	require.NotNil(t, sel.CourtID)
}

func TestClickSlotFirstClick(t *testing.T) {
	sel := slots.Selection{}.ClickSlot("10:00", nil, closeHour)
	require.Equal(t, "10:00", sel.StartTime)
	require.Equal(t, "11:00", sel.EndTime)
}

func TestClickSlotLastSlotClampsToClose(t *testing.T) {
	sel := slots.Selection{}.ClickSlot("21:00", nil, closeHour)
	require.Equal(t, "21:00", sel.StartTime)
	require.Equal(t, "22:00", sel.EndTime)
}

func TestClickSlotOnStartDeselects(t *testing.T) {
	sel := slots.Selection{}.ClickSlot("10:00", nil, closeHour)
	sel = sel.ClickSlot("10:00", nil, closeHour)
	require.Empty(t, sel.StartTime)
	require.Empty(t, sel.EndTime)
}

func TestClickSlotExtendsForward(t *testing.T) {
	sel := slots.Selection{}.ClickSlot("10:00", nil, closeHour)
	sel = sel.ClickSlot("13:00", nil, closeHour)
	require.Equal(t, "10:00", sel.StartTime)
	require.Equal(t, "14:00", sel.EndTime)
}

func TestClickSlotCannotExtendThroughBookedGap(t *testing.T) {
	booked := []slots.BookedWindow{{StartHour: 11, EndHour: 12}}

	sel := slots.Selection{}.ClickSlot("10:00", booked, closeHour)
	unchanged := sel.ClickSlot("13:00", booked, closeHour)
	require.Equal(t, sel, unchanged)
}

func TestClickSlotBeforeStartRestarts(t *testing.T) {
	sel := slots.Selection{}.ClickSlot("14:00", nil, closeHour)
	sel = sel.ClickSlot("09:00", nil, closeHour)
	require.Equal(t, "09:00", sel.StartTime)
	require.Equal(t, "10:00", sel.EndTime)
}

func TestClickSlotOnBookedSlotIgnored(t *testing.T) {
	booked := []slots.BookedWindow{{StartHour: 10, EndHour: 11}}

	sel := slots.Selection{}.ClickSlot("10:00", booked, closeHour)
	require.Empty(t, sel.StartTime)
	require.Empty(t, sel.EndTime)
}

func TestWithEquipmentClampsQuantity(t *testing.T) {
	id := uuid.New()

	sel := slots.Selection{}.WithEquipment(id, 5, 3)
	require.Len(t, sel.Equipment, 1)
	require.Equal(t, 3, sel.Equipment[0].Quantity)

	sel = sel.WithEquipment(id, -2, 3)
	require.Empty(t, sel.Equipment, "clamped to zero removes the line")

	sel = sel.WithEquipment(id, 2, 3)
	require.Len(t, sel.Equipment, 1)
	require.Equal(t, 2, sel.Equipment[0].Quantity)
}

func TestEquipmentAndCoachDoNotResetTimes(t *testing.T) {
	coachID := uuid.New()
	sel := slots.Selection{}.ClickSlot("10:00", nil, closeHour)
	sel = sel.WithEquipment(uuid.New(), 1, 5)
	sel = sel.WithCoach(&coachID)

	require.Equal(t, "10:00", sel.StartTime)
	require.Equal(t, "11:00", sel.EndTime)
	require.Equal(t, coachID, *sel.CoachID)
}

func TestComplete(t *testing.T) {
	require.ErrorIs(t, slots.Selection{}.Complete(), slots.ErrIncompleteSelection)

	today := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	sel, err := slots.Selection{}.WithDate(today, today)
	require.NoError(t, err)
	sel = sel.WithCourt(uuid.New())
	require.ErrorIs(t, sel.Complete(), slots.ErrIncompleteSelection)

	sel = sel.ClickSlot("10:00", nil, closeHour)
	require.NoError(t, sel.Complete())
}

package slots_test

import (
	"testing"

	"courtly/internal/slots"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	grid := slots.Generate(6, 22)
	require.Len(t, grid, 16)
	require.Equal(t, "06:00", grid[0])
	require.Equal(t, "21:00", grid[len(grid)-1])

	require.Empty(t, slots.Generate(10, 10))
	require.Empty(t, slots.Generate(12, 10))
}

func TestIsBooked(t *testing.T) {
	booked := []slots.BookedWindow{{StartHour: 10, EndHour: 12}}

	require.False(t, slots.IsBooked("09:00", booked))
	require.True(t, slots.IsBooked("10:00", booked))
	require.True(t, slots.IsBooked("11:00", booked))
	require.False(t, slots.IsBooked("12:00", booked), "end hour is exclusive")
	require.False(t, slots.IsBooked("10:00", nil))
}

func TestOnHourGrid(t *testing.T) {
	require.True(t, slots.OnHourGrid("06:00"))
	require.True(t, slots.OnHourGrid("23:00"))
	require.True(t, slots.OnHourGrid("00:00"))

	require.False(t, slots.OnHourGrid("10:30"), "off-grid minutes widen to the full hour")
	require.False(t, slots.OnHourGrid("6:00"))
	require.False(t, slots.OnHourGrid("24:00"))
	require.False(t, slots.OnHourGrid("10"))
	require.False(t, slots.OnHourGrid("ab:00"))
}

func TestIsPeak(t *testing.T) {
	require.False(t, slots.IsPeak("17:00"))
	require.True(t, slots.IsPeak("18:00"))
	require.True(t, slots.IsPeak("20:00"))
	require.False(t, slots.IsPeak("21:00"))
}

func TestInRange(t *testing.T) {
	require.True(t, slots.InRange("10:00", "10:00", "12:00"))
	require.True(t, slots.InRange("11:00", "10:00", "12:00"))
	require.False(t, slots.InRange("12:00", "10:00", "12:00"))
	require.False(t, slots.InRange("09:00", "10:00", "12:00"))
	require.False(t, slots.InRange("10:00", "", ""))
}

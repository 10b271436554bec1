package equipment_test

import (
	"testing"

	"courtly/internal/equipment"

	"github.com/stretchr/testify/require"
)

func TestClampQuantity(t *testing.T) {
	racket := equipment.Equipment{Name: "Racket", TotalQuantity: 5}

	require.Equal(t, 0, racket.ClampQuantity(-1))
	require.Equal(t, 0, racket.ClampQuantity(0))
	require.Equal(t, 3, racket.ClampQuantity(3))
	require.Equal(t, 5, racket.ClampQuantity(5))
	require.Equal(t, 5, racket.ClampQuantity(9))
}

func TestEquipmentTypeIsValid(t *testing.T) {
	require.True(t, equipment.EquipmentType("racket").IsValid())
	require.True(t, equipment.EquipmentType("shuttlecock").IsValid())
	require.False(t, equipment.EquipmentType("canoe").IsValid())
}

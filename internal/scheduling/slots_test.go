package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

func TestGenerateSlots_MondayLongService(t *testing.T) {
	settings := newTestState().Settings

	slots, err := GenerateSlots("2024-06-10", 90, settings)
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:30"), slots[1])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
	assert.False(t, ContainsSlot(slots, "17:00"))
}

func TestGenerateSlots_IntervalIndependentOfDuration(t *testing.T) {
	settings := newTestState().Settings

	slots, err := GenerateSlots("2024-06-10", 45, settings)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:30"), slots[1])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.False(t, ContainsSlot(slots, "17:30"))
}

func TestGenerateSlots_Saturday(t *testing.T) {
	slots, err := GenerateSlots("2024-06-15", 60, newTestState().Settings)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("13:00"), slots[len(slots)-1])
}

func TestGenerateSlots_ClosedDays(t *testing.T) {
	settings := newTestState().Settings
	settings.SpecialClosures = []domain.SpecialClosure{{Date: "2024-06-11", Reason: "Manutenção"}}
	settings.OperatingDays = settings.OperatingDays[:3] // вс, пн, вт

	tests := []struct {
		name string
		date string
	}{
		{"sunday rule closed", "2024-06-16"},
		{"special closure", "2024-06-11"},
		{"missing rule", "2024-06-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.date, 30, settings)
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_WindowValidity(t *testing.T) {
	settings := newTestState().Settings
	settings.SlotIntervalMinutes = 20

	for day := 10; day <= 16; day++ {
		date := time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
		rule := settings.RuleFor(int(date.Weekday()))
		require.NotNil(t, rule)

		for _, duration := range []int{15, 45, 90, 240, 600, 601} {
			slots, err := GenerateSlots(date.Format(domain.DateFormat), duration, settings)
			require.NoError(t, err)

			if !rule.IsOpen {
				assert.Empty(t, slots)
				continue
			}

			open, _ := rule.OpenTime.Minutes()
			closeAt, _ := rule.CloseTime.Minutes()
			for i, s := range slots {
				m, err := s.Minutes()
				require.NoError(t, err)
				assert.GreaterOrEqual(t, m, open)
				assert.LessOrEqual(t, m+duration, closeAt)
				if i > 0 {
					assert.True(t, slots[i-1].IsBefore(s))
				}
			}
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	settings := newTestState().Settings

	first, err := GenerateSlots("2024-06-10", 90, settings)
	require.NoError(t, err)
	second, err := GenerateSlots("2024-06-10", 90, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_DefaultInterval(t *testing.T) {
	settings := newTestState().Settings
	settings.SlotIntervalMinutes = 0

	slots, err := GenerateSlots("2024-06-10", 90, settings)
	require.NoError(t, err)
	assert.Len(t, slots, 18)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	settings := newTestState().Settings

	_, err := GenerateSlots("10/06/2024", 90, settings)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = GenerateSlots("2024-06-10", 0, settings)
	assert.ErrorIs(t, err, ErrValidation)

	settings.OperatingDays[1].OpenTime = "8h"
	_, err = GenerateSlots("2024-06-10", 30, settings)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDropStartedSlots(t *testing.T) {
	slots := []types.TimeString{"09:30", "10:00", "10:30", "11:00"}
	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, []types.TimeString{"10:30", "11:00"}, DropStartedSlots(slots, "2024-06-10", now))
	assert.Equal(t, slots, DropStartedSlots(slots, "2024-06-11", now))
}

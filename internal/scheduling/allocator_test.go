package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

func TestOccupancy(t *testing.T) {
	st := newTestState()
	st.Settings.BoxCapacity = 3
	addAppointment(st, "a1", domain.StatusEmExecucao, false, boxPtr(2), "2024-06-10", "09:00")
	addAppointment(st, "a2", domain.StatusConfirmado, false, boxPtr(1), "2024-06-10", "10:00")
	addAppointment(st, "a3", domain.StatusEmExecucao, true, nil, "2024-06-10", "10:00")

	assert.Equal(t, []BayStatus{
		{BoxID: 1},
		{BoxID: 2, Occupied: true, AppointmentID: "a1"},
		{BoxID: 3},
	}, Occupancy(st))

	box, ok := FirstFreeBay(st)
	require.True(t, ok)
	assert.Equal(t, 1, box)
}

func TestFirstFreeBay_AllBusy(t *testing.T) {
	st := newTestState()
	addAppointment(st, "a1", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "09:00")
	addAppointment(st, "a2", domain.StatusEmExecucao, false, boxPtr(2), "2024-06-10", "09:00")

	_, ok := FirstFreeBay(st)
	assert.False(t, ok)
}

func TestCheckBayAvailable(t *testing.T) {
	st := newTestState()
	addAppointment(st, "a1", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "09:00")

	assert.ErrorIs(t, CheckBayAvailable(st, "a2", 1), ErrBayConflict)
	assert.NoError(t, CheckBayAvailable(st, "a1", 1))
	assert.NoError(t, CheckBayAvailable(st, "a2", 2))
}

func TestValidateBox(t *testing.T) {
	settings := newTestState().Settings

	assert.NoError(t, ValidateBox(settings, 1))
	assert.NoError(t, ValidateBox(settings, 2))
	assert.ErrorIs(t, ValidateBox(settings, 0), ErrValidation)
	assert.ErrorIs(t, ValidateBox(settings, 3), ErrValidation)
}

func TestCheckRouteAvailable(t *testing.T) {
	st := newTestState()
	addAppointment(st, "d1", domain.StatusEmRota, true, nil, "2024-06-10", "09:00")
	addAppointment(st, "d2", domain.StatusEmExecucao, true, nil, "2024-06-10", "09:00")
	addAppointment(st, "d3", domain.StatusConfirmado, true, nil, "2024-06-10", "10:00")

	// Без лимита бригад
	assert.NoError(t, CheckRouteAvailable(st, "d3"))

	st.Settings.DeliveryTeams = 2
	assert.ErrorIs(t, CheckRouteAvailable(st, "d3"), ErrDriverUnavailable)

	st.Settings.DeliveryTeams = 3
	assert.NoError(t, CheckRouteAvailable(st, "d3"))
	assert.Equal(t, 2, ActiveRoutes(st, "d3"))
}

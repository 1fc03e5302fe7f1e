package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		valid    bool
		terminal bool
	}{
		{status: StatusNovo, valid: true},
		{status: StatusConfirmado, valid: true},
		{status: StatusEmRota, valid: true},
		{status: StatusEmExecucao, valid: true},
		{status: StatusFinalizado, valid: true, terminal: true},
		{status: StatusCancelado, valid: true, terminal: true},
		{status: "PENDENTE", valid: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())

			appt := &Appointment{Status: tt.status}
			assert.Equal(t, !tt.terminal, appt.IsActive())
		})
	}
}

func TestAppointment_OccupiesBay(t *testing.T) {
	box := 2
	appt := &Appointment{Status: StatusEmExecucao, BoxID: &box}
	assert.True(t, appt.OccupiesBay(2))
	assert.False(t, appt.OccupiesBay(1))

	appt.Status = StatusConfirmado
	assert.False(t, appt.OccupiesBay(2))

	appt.Status = StatusEmExecucao
	appt.IsDelivery = true
	assert.False(t, appt.OccupiesBay(2))
}

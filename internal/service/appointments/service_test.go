package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *tenantRepo.MemoryRepository) {
	t.Helper()
	repo := tenantRepo.NewMemoryRepository()
	state := domain.NewTenantState("carbon", "Carbon Detail")
	state.Settings.BoxCapacity = 2
	state.Appointments = []*domain.Appointment{
		{ID: "a1", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(1), ServiceType: "Polimento",
			DurationMinutes: 240, Price: 450, Date: "2024-06-10", Time: "09:00", Status: domain.StatusEmExecucao},
		{ID: "a2", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(2), ServiceType: "Lavagem",
			DurationMinutes: 45, Price: 60, Date: "2024-06-10", Time: "10:00", Status: domain.StatusEmExecucao},
		{ID: "a3", CustomerID: "c1", VehicleID: "v1", ServiceType: "Lavagem",
			DurationMinutes: 45, Price: 60, Date: "2024-06-10", Time: "11:00", Status: domain.StatusConfirmado},
		{ID: "d1", CustomerID: "c1", VehicleID: "v1", ServiceType: "Lavagem", Address: "Rua A",
			DurationMinutes: 45, Price: 60, Date: "2024-06-10", Time: "11:00", Status: domain.StatusNovo, IsDelivery: true},
		{ID: "f1", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(1), ServiceType: "Lavagem",
			DurationMinutes: 45, Price: 60, Date: "2024-06-09", Time: "11:00", Status: domain.StatusFinalizado},
	}
	require.NoError(t, repo.Create(context.Background(), state))

	return NewService(repo, scheduling.NewScheduler(), tenantRepo.NewMemoryTxManager(), nopLogger{}), repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.GetByID(context.Background(), "carbon", "a3")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMADO", resp.Status)
	assert.Equal(t, "FIXED", resp.Model)
	assert.Equal(t, []string{"EM_EXECUCAO", "CANCELADO"}, resp.AllowedNext)

	resp, err = svc.GetByID(context.Background(), "carbon", "f1")
	require.NoError(t, err)
	assert.Empty(t, resp.AllowedNext)

	_, err = svc.GetByID(context.Background(), "carbon", "zz")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.GetByID(context.Background(), "other", "a1")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestAssignBay(t *testing.T) {
	svc, repo := newService(t)

	resp, err := svc.AssignBay(context.Background(), "carbon", "a3", &models.AssignBayRequest{BoxID: 2})
	require.NoError(t, err)
	require.NotNil(t, resp.BoxID)
	assert.Equal(t, 2, *resp.BoxID)

	state, err := repo.Get(context.Background(), "carbon")
	require.NoError(t, err)
	assert.Equal(t, 2, *state.FindAppointment("a3").BoxID)
}

func TestAssignBay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		box     int
		wantErr error
	}{
		{name: "occupied bay while executing", id: "a2", box: 1, wantErr: ErrBayConflict},
		{name: "bay out of range", id: "a3", box: 3, wantErr: ErrInvalidInput},
		{name: "delivery appointment", id: "d1", box: 1, wantErr: ErrInvalidInput},
		{name: "finished appointment", id: "f1", box: 2, wantErr: ErrAppointmentClosed},
		{name: "unknown appointment", id: "zz", box: 1, wantErr: ErrAppointmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			_, err := svc.AssignBay(context.Background(), "carbon", tt.id, &models.AssignBayRequest{BoxID: tt.box})
			assert.ErrorIs(t, err, tt.wantErr)

			state, getErr := repo.Get(context.Background(), "carbon")
			require.NoError(t, getErr)
			assert.Equal(t, int64(1), state.Version)
		})
	}
}

func TestOccupancy(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Occupancy(context.Background(), "carbon")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.BoxCapacity)
	assert.Equal(t, 0, resp.Free)
	require.Len(t, resp.Bays, 2)
	assert.Equal(t, "a1", resp.Bays[0].AppointmentID)
	assert.Equal(t, "a2", resp.Bays[1].AppointmentID)
}

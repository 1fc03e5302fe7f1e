package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *tenantRepo.MemoryRepository) {
	t.Helper()
	repo := tenantRepo.NewMemoryRepository()
	svc := NewService(repo, tenantRepo.NewMemoryTxManager(), Defaults{BoxCapacity: 4, SlotIntervalMinutes: 15}, nopLogger{})
	return svc, repo
}

func provision(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Provision(context.Background(), &models.ProvisionTenantRequest{TenantKey: "carbon", BusinessName: "Carbon Detail"})
	require.NoError(t, err)
}

func TestProvision(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Provision(context.Background(), &models.ProvisionTenantRequest{TenantKey: "carbon", BusinessName: "Carbon Detail"})
	require.NoError(t, err)
	assert.Equal(t, "carbon", resp.TenantKey)
	assert.Equal(t, "carbon", resp.Slug)
	assert.Equal(t, 4, resp.BoxCapacity)
	assert.Equal(t, 15, resp.SlotIntervalMinutes)
	assert.True(t, resp.OnlineBookingEnabled)
	assert.Len(t, resp.OperatingDays, 7)
	assert.False(t, resp.OperatingDays[0].IsOpen)
	assert.Equal(t, "09:00", resp.OperatingDays[6].OpenTime)
	assert.Len(t, resp.Services, 4)

	_, err = svc.Provision(context.Background(), &models.ProvisionTenantRequest{TenantKey: "carbon"})
	assert.ErrorIs(t, err, ErrTenantAlreadyExists)
}

func TestProvision_InvalidKey(t *testing.T) {
	svc, _ := newService(t)

	for _, key := range []string{"", "Carbon", "car bon", "-carbon"} {
		_, err := svc.Provision(context.Background(), &models.ProvisionTenantRequest{TenantKey: key})
		assert.ErrorIs(t, err, ErrInvalidInput, key)
	}
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := newService(t)
	provision(t, svc)

	resp, err := svc.Update(context.Background(), "carbon", &models.UpdateSettingsRequest{
		BoxCapacity:          ptr.Ptr(2),
		OnlineBookingEnabled: ptr.Ptr(false),
		SpecialClosures:      &[]models.SpecialClosureDTO{{Date: "2024-12-25", Reason: "Natal"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.BoxCapacity)
	assert.False(t, resp.OnlineBookingEnabled)
	assert.Equal(t, "Carbon Detail", resp.BusinessName)
	assert.Equal(t, 15, resp.SlotIntervalMinutes)
	require.Len(t, resp.SpecialClosures, 1)

	got, err := svc.Get(context.Background(), "carbon")
	require.NoError(t, err)
	assert.Equal(t, 2, got.BoxCapacity)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateSettingsRequest
		wantErr error
	}{
		{name: "zero boxes", req: &models.UpdateSettingsRequest{BoxCapacity: ptr.Ptr(0)}, wantErr: ErrInvalidInput},
		{name: "tiny interval", req: &models.UpdateSettingsRequest{SlotIntervalMinutes: ptr.Ptr(1)}, wantErr: ErrInvalidInput},
		{name: "negative teams", req: &models.UpdateSettingsRequest{DeliveryTeams: ptr.Ptr(-1)}, wantErr: ErrInvalidInput},
		{name: "empty name", req: &models.UpdateSettingsRequest{BusinessName: ptr.Ptr("  ")}, wantErr: ErrInvalidInput},
		{
			name: "open after close",
			req: &models.UpdateSettingsRequest{OperatingDays: &[]models.OperatingRuleDTO{
				{DayOfWeek: 1, IsOpen: true, OpenTime: "18:00", CloseTime: "08:00"},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate weekday",
			req: &models.UpdateSettingsRequest{OperatingDays: &[]models.OperatingRuleDTO{
				{DayOfWeek: 1, IsOpen: false}, {DayOfWeek: 1, IsOpen: false},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad closure date",
			req:     &models.UpdateSettingsRequest{SpecialClosures: &[]models.SpecialClosureDTO{{Date: "25/12"}}},
			wantErr: ErrInvalidInput,
		},
		{name: "bay in use", req: &models.UpdateSettingsRequest{BoxCapacity: ptr.Ptr(2)}, wantErr: ErrBayInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			state := domain.NewTenantState("carbon", "Carbon Detail")
			state.Settings.BoxCapacity = 4
			state.Appointments = []*domain.Appointment{{ID: "a1", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(3),
				ServiceType: "Lavagem", DurationMinutes: 45, Date: "2024-06-10", Time: "09:00", Status: domain.StatusEmExecucao}}
			require.NoError(t, repo.Create(context.Background(), state))

			_, err := svc.Update(context.Background(), "carbon", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			got, getErr := repo.Get(context.Background(), "carbon")
			require.NoError(t, getErr)
			assert.Equal(t, int64(1), got.Version)
		})
	}
}

func TestUpdate_ShrinkReleasesPendingBays(t *testing.T) {
	svc, repo := newService(t)
	state := domain.NewTenantState("carbon", "Carbon Detail")
	state.Settings.BoxCapacity = 4
	state.Appointments = []*domain.Appointment{
		{ID: "a1", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(4), ServiceType: "Lavagem",
			DurationMinutes: 45, Date: "2024-06-10", Time: "09:00", Status: domain.StatusConfirmado},
		{ID: "a2", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(3), ServiceType: "Lavagem",
			DurationMinutes: 45, Date: "2024-06-10", Time: "10:00", Status: domain.StatusNovo},
		{ID: "a3", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(2), ServiceType: "Lavagem",
			DurationMinutes: 45, Date: "2024-06-10", Time: "11:00", Status: domain.StatusConfirmado},
		{ID: "a4", CustomerID: "c1", VehicleID: "v1", BoxID: ptr.Ptr(4), ServiceType: "Lavagem",
			DurationMinutes: 45, Date: "2024-06-09", Time: "11:00", Status: domain.StatusFinalizado},
	}
	require.NoError(t, repo.Create(context.Background(), state))

	resp, err := svc.Update(context.Background(), "carbon", &models.UpdateSettingsRequest{BoxCapacity: ptr.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.BoxCapacity)

	got, err := repo.Get(context.Background(), "carbon")
	require.NoError(t, err)
	assert.Nil(t, got.FindAppointment("a1").BoxID)
	assert.Nil(t, got.FindAppointment("a2").BoxID)
	require.NotNil(t, got.FindAppointment("a3").BoxID)
	assert.Equal(t, 2, *got.FindAppointment("a3").BoxID)
	require.NotNil(t, got.FindAppointment("a4").BoxID)
	assert.Equal(t, 4, *got.FindAppointment("a4").BoxID)
}

func TestUpsertService(t *testing.T) {
	svc, _ := newService(t)
	provision(t, svc)

	_, err := svc.UpsertService(context.Background(), "carbon", "s5", &models.UpsertServiceRequest{
		Name: "Vitrificação", DurationMinutes: 480, Price: 890, CompatibleVehicles: []string{"CARRO", "SUV"},
		Active: true, AllowsFixed: true,
	})
	require.NoError(t, err)

	_, err = svc.UpsertService(context.Background(), "carbon", "s1", &models.UpsertServiceRequest{
		Name: "Lavagem Simples", DurationMinutes: 60, Price: 70, Active: false,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "carbon")
	require.NoError(t, err)
	require.Len(t, got.Services, 5)
	assert.Equal(t, 60, got.Services[0].DurationMinutes)
	assert.False(t, got.Services[0].Active)
	assert.Equal(t, "s5", got.Services[4].ID)

	profile, err := svc.PublicProfile(context.Background(), "carbon")
	require.NoError(t, err)
	assert.Len(t, profile.Services, 4)
}

func TestUpsertService_Errors(t *testing.T) {
	svc, _ := newService(t)
	provision(t, svc)

	_, err := svc.UpsertService(context.Background(), "carbon", "s9", &models.UpsertServiceRequest{Name: "X", DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertService(context.Background(), "carbon", "s9", &models.UpsertServiceRequest{
		Name: "X", DurationMinutes: 30, CompatibleVehicles: []string{"BARCO"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertService(context.Background(), "other", "s9", &models.UpsertServiceRequest{Name: "X", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

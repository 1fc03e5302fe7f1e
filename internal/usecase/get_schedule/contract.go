package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// TenantRepository интерфейс хранилища состояний студий
type TenantRepository interface {
	Get(ctx context.Context, tenantKey string) (*domain.TenantState, error)
}

// Scheduler интерфейс фасада планирования
type Scheduler interface {
	Schedule(state *domain.TenantState, date string, model domain.BusinessModel) scheduling.ModelView
	ListForDate(state *domain.TenantState, date string, model domain.BusinessModel) []*domain.Appointment
	Occupancy(state *domain.TenantState) []scheduling.BayStatus
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

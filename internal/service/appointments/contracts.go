package appointments

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// TenantRepository интерфейс хранилища состояний студий
type TenantRepository interface {
	Get(ctx context.Context, tenantKey string) (*domain.TenantState, error)
	Save(ctx context.Context, state *domain.TenantState) error
}

// Scheduler интерфейс фасада планирования
type Scheduler interface {
	AssignBay(state *domain.TenantState, appointmentID string, boxID int) (*domain.Appointment, error)
	Occupancy(state *domain.TenantState) []scheduling.BayStatus
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

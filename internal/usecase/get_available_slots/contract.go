package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// TenantRepository интерфейс хранилища состояний студий
type TenantRepository interface {
	Get(ctx context.Context, tenantKey string) (*domain.TenantState, error)
}

// Scheduler интерфейс фасада планирования
type Scheduler interface {
	ComputeSlots(state *domain.TenantState, date string, durationMinutes int) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

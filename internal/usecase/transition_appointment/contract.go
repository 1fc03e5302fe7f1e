package transition_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/events"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// TenantRepository интерфейс хранилища состояний студий
type TenantRepository interface {
	Get(ctx context.Context, tenantKey string) (*domain.TenantState, error)
	Save(ctx context.Context, state *domain.TenantState) error
}

// Scheduler интерфейс фасада планирования
type Scheduler interface {
	Transition(state *domain.TenantState, req scheduling.TransitionRequest) (*scheduling.TransitionResult, error)
}

// EventPublisher интерфейс публикации событий записей
type EventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
}

// MetricsRecorder интерфейс доменных метрик
type MetricsRecorder interface {
	RecordTransition(from, to, result string)
	RecordBayConflict()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

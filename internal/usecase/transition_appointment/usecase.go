package transition_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/events"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

const (
	resultApplied = "applied"
	resultNoop    = "noop"
	resultRefused = "refused"
)

// UseCase use case для смены статуса записи
type UseCase struct {
	tenantRepo   TenantRepository
	scheduler    Scheduler
	publisher    EventPublisher
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	scheduler Scheduler,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:   tenantRepo,
		scheduler:    scheduler,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case смены статуса
// Повтор уже примененного перехода не сохраняет состояние и не публикует событие
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionAppointment: tenant=%s, appointment=%s, target=%s",
		req.TenantKey, req.AppointmentID, req.TargetStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		response *Response
		from     string
	)

	// 2. Выполняем переход в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем состояние студии с блокировкой
		state, err := uc.tenantRepo.Get(txCtx, req.TenantKey)
		if err != nil {
			if errors.Is(err, tenantRepo.ErrTenantNotFound) {
				uc.logger.Warn("TransitionAppointment: tenant=%s not found", req.TenantKey)
				return ErrTenantNotFound
			}
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				uc.logger.Warn("TransitionAppointment: tenant=%s locked by concurrent update", req.TenantKey)
				return ErrConcurrentUpdate
			}
			uc.logger.Error("TransitionAppointment: failed to load tenant=%s: %v", req.TenantKey, err)
			return fmt.Errorf("%w: failed to load tenant: %v", ErrInternal, err)
		}

		if current := state.FindAppointment(req.AppointmentID); current != nil {
			from = string(current.Status)
		}

		// 2.2. Применяем переход
		result, err := uc.scheduler.Transition(state, scheduling.TransitionRequest{
			AppointmentID:      req.AppointmentID,
			Target:             req.TargetStatus,
			ExpectedStatus:     req.ExpectedStatus,
			BoxID:              req.BoxID,
			CancellationReason: req.CancellationReason,
		})
		if err != nil {
			return uc.mapSchedulingError(req, err)
		}

		response = &Response{
			Appointment:     result.Appointment.Clone(),
			PreviousStatus:  result.From,
			Changed:         result.Changed,
			CustomerUpdated: result.CustomerUpdated,
		}

		if !result.Changed {
			return nil
		}

		// 2.3. Сохраняем состояние
		if err := uc.tenantRepo.Save(txCtx, state); err != nil {
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				uc.logger.Warn("TransitionAppointment: tenant=%s changed concurrently", req.TenantKey)
				return ErrConcurrentUpdate
			}
			uc.logger.Error("TransitionAppointment: failed to save tenant=%s: %v", req.TenantKey, err)
			return fmt.Errorf("%w: failed to save tenant: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrBayConflict) || errors.Is(err, ErrDriverUnavailable) {
			uc.metrics.RecordTransition(from, string(req.TargetStatus), resultRefused)
		}
		return nil, err
	}

	appt := response.Appointment

	// 3. Повтор перехода: ничего не сохранялось
	if !response.Changed {
		uc.logger.Info("TransitionAppointment: appointment id=%s already in status %s", appt.ID, appt.Status)
		uc.metrics.RecordTransition(string(response.PreviousStatus), string(appt.Status), resultNoop)
		return response, nil
	}

	uc.logger.Info("TransitionAppointment: appointment id=%s moved %s -> %s",
		appt.ID, response.PreviousStatus, appt.Status)

	if appt.Status == domain.StatusFinalizado && !response.CustomerUpdated {
		uc.logger.Warn("TransitionAppointment: customer=%s of appointment id=%s not found, stats were not updated",
			appt.CustomerID, appt.ID)
	}

	// 4. Метрики и событие после фиксации
	uc.metrics.RecordTransition(string(response.PreviousStatus), string(appt.Status), resultApplied)

	event := events.NewStatusChangedEvent(req.TenantKey, response.PreviousStatus, appt, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("TransitionAppointment: failed to publish event for appointment id=%s: %v", appt.ID, err)
	}

	return response, nil
}

// mapSchedulingError переводит ошибки планировщика в ошибки use case
func (uc *UseCase) mapSchedulingError(req *Request, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		uc.logger.Warn("TransitionAppointment: appointment=%s not found in tenant=%s", req.AppointmentID, req.TenantKey)
		return ErrAppointmentNotFound
	case errors.Is(err, scheduling.ErrInvalidTransition):
		uc.logger.Warn("TransitionAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	case errors.Is(err, scheduling.ErrBayConflict):
		uc.logger.Warn("TransitionAppointment: %v", err)
		uc.metrics.RecordBayConflict()
		return fmt.Errorf("%w: %v", ErrBayConflict, err)
	case errors.Is(err, scheduling.ErrDriverUnavailable):
		uc.logger.Warn("TransitionAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrDriverUnavailable, err)
	case errors.Is(err, scheduling.ErrValidation):
		uc.logger.Warn("TransitionAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("TransitionAppointment: unexpected scheduling error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

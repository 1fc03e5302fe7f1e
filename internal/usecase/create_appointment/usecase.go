package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/events"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// UseCase use case для создания записи (внутренней и публичной)
type UseCase struct {
	tenantRepo   TenantRepository
	scheduler    Scheduler
	publisher    EventPublisher
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	newID        func() string
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
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Загрузка, изменение и сохранение состояния студии выполняются в одной транзакции под блокировкой строки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%s, source=%s, date=%s, time=%s, delivery=%t",
		req.TenantKey, req.Source, req.Date, req.Time, req.IsDelivery)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var response *Response

	// 3. Выполняем операции с хранилищем в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем состояние студии с блокировкой
		state, err := uc.tenantRepo.Get(txCtx, req.TenantKey)
		if err != nil {
			if errors.Is(err, tenantRepo.ErrTenantNotFound) {
				uc.logger.Warn("CreateAppointment: tenant=%s not found", req.TenantKey)
				return ErrTenantNotFound
			}
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				uc.logger.Warn("CreateAppointment: tenant=%s locked by concurrent update", req.TenantKey)
				return ErrConcurrentUpdate
			}
			uc.logger.Error("CreateAppointment: failed to load tenant=%s: %v", req.TenantKey, err)
			return fmt.Errorf("%w: failed to load tenant: %v", ErrInternal, err)
		}

		draft := scheduling.Draft{
			CustomerID:      req.CustomerID,
			VehicleID:       req.VehicleID,
			BoxID:           req.BoxID,
			ServiceID:       req.ServiceID,
			ServiceType:     req.ServiceType,
			Date:            req.Date,
			Time:            req.Time,
			DurationMinutes: req.DurationMinutes,
			Price:           req.Price,
			IsDelivery:      req.IsDelivery,
			Address:         req.Address,
			Observation:     req.Observation,
		}

		customerCreated := false

		// 3.2. Проверки публичной записи
		if req.Source == SourcePublic {
			if err := uc.checkPublicBooking(state, req, now); err != nil {
				return err
			}

			// Клиент не выбирает бокс, используется первый свободный
			draft.BoxID = nil
			draft.CustomerID, draft.VehicleID, customerCreated = resolveClient(state, req.Client, uc.newID)
		}

		// 3.3. Создаем запись
		appt, err := uc.scheduler.Create(state, draft)
		if err != nil {
			if errors.Is(err, scheduling.ErrValidation) {
				uc.logger.Warn("CreateAppointment: draft rejected: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 3.4. Сохраняем состояние
		if err := uc.tenantRepo.Save(txCtx, state); err != nil {
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				uc.logger.Warn("CreateAppointment: tenant=%s changed concurrently", req.TenantKey)
				return ErrConcurrentUpdate
			}
			uc.logger.Error("CreateAppointment: failed to save tenant=%s: %v", req.TenantKey, err)
			return fmt.Errorf("%w: failed to save tenant: %v", ErrInternal, err)
		}

		response = &Response{Appointment: appt.Clone(), CustomerCreated: customerCreated}
		return nil
	})

	if err != nil {
		return nil, err
	}

	appt := response.Appointment
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, tenant=%s, box=%s",
		appt.ID, req.TenantKey, boxLabel(appt.BoxID))

	// 4. Метрики и событие после фиксации; ошибка публикации не откатывает запись
	uc.metrics.RecordAppointmentCreated(string(req.Source), string(appt.Model()))

	event := events.NewCreatedEvent(req.TenantKey, string(req.Source), appt, now)
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish event for appointment id=%s: %v", appt.ID, err)
	}

	return response, nil
}

// checkPublicBooking проверяет, что студия принимает онлайн-записи и время лежит на сетке слотов
func (uc *UseCase) checkPublicBooking(state *domain.TenantState, req *Request, now time.Time) error {
	if !state.Settings.OnlineBookingEnabled {
		uc.logger.Warn("CreateAppointment: online booking disabled for tenant=%s", req.TenantKey)
		return ErrOnlineBookingDisabled
	}

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date=%s is in the past", req.Date)
		return ErrInvalidDate
	}

	service := state.FindService(*req.ServiceID)
	if service == nil || !service.Active {
		uc.logger.Warn("CreateAppointment: service=%s is not bookable in tenant=%s", *req.ServiceID, req.TenantKey)
		return fmt.Errorf("%w: service %s is not available", ErrInvalidInput, *req.ServiceID)
	}

	slots, err := uc.scheduler.ComputeSlots(state, req.Date, service.DurationMinutes)
	if err != nil {
		if errors.Is(err, scheduling.ErrValidation) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	slots = scheduling.DropStartedSlots(slots, req.Date, now)
	if !scheduling.ContainsSlot(slots, req.Time) {
		uc.logger.Warn("CreateAppointment: slot %s on %s is not available in tenant=%s", req.Time, req.Date, req.TenantKey)
		return ErrSlotNotAvailable
	}

	return nil
}

func boxLabel(box *int) string {
	if box == nil {
		return "none"
	}
	return strconv.Itoa(*box)
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	tenantRepo   TenantRepository
	scheduler    Scheduler
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	scheduler Scheduler,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:   tenantRepo,
		scheduler:    scheduler,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Сетка слотов не учитывает занятость боксов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, date=%s, service=%q, duration=%d, public=%t",
		req.TenantKey, req.Date, ptr.Value(req.ServiceID), req.DurationMinutes, req.Public)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем состояние студии
	state, err := uc.tenantRepo.Get(ctx, req.TenantKey)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailableSlots: tenant=%s not found", req.TenantKey)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load tenant=%s: %v", req.TenantKey, err)
		return nil, fmt.Errorf("%w: failed to load tenant: %v", ErrInternal, err)
	}

	// 4. Проверки публичной записи
	if req.Public {
		if !state.Settings.OnlineBookingEnabled {
			uc.logger.Warn("GetAvailableSlots: online booking disabled for tenant=%s", req.TenantKey)
			return nil, ErrOnlineBookingDisabled
		}
		if isDateInPast(req.Date, now) {
			uc.logger.Warn("GetAvailableSlots: date=%s is in the past", req.Date)
			return nil, ErrInvalidDate
		}
	}

	// 5. Определяем длительность услуги
	duration := req.DurationMinutes
	if req.ServiceID != nil {
		service := state.FindService(*req.ServiceID)
		if service == nil || (req.Public && !service.Active) {
			uc.logger.Warn("GetAvailableSlots: service=%s not found in tenant=%s", *req.ServiceID, req.TenantKey)
			return nil, ErrServiceNotFound
		}
		duration = service.DurationMinutes
	}

	// 6. Строим сетку слотов
	slots, err := uc.scheduler.ComputeSlots(state, req.Date, duration)
	if err != nil {
		if errors.Is(err, scheduling.ErrValidation) {
			uc.logger.Warn("GetAvailableSlots: invalid slot query: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 7. Для клиента убираем уже начавшиеся слоты сегодняшнего дня
	if req.Public {
		slots = scheduling.DropStartedSlots(slots, req.Date, now)
	}

	uc.logger.Info("GetAvailableSlots: tenant=%s, date=%s, found %d slots", req.TenantKey, req.Date, len(slots))

	return &Response{
		TenantKey:       req.TenantKey,
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

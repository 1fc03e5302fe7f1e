package get_schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// UseCase use case для получения расписания модели (очередь и история)
type UseCase struct {
	tenantRepo TenantRepository
	scheduler  Scheduler
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tenantRepo TenantRepository, scheduler Scheduler, logger Logger) *UseCase {
	return &UseCase{
		tenantRepo: tenantRepo,
		scheduler:  scheduler,
		logger:     logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: tenant=%s, date=%s, model=%s", req.TenantKey, req.Date, req.Model)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.TenantKey) == "" {
		return nil, fmt.Errorf("%w: tenantKey is required", ErrInvalidInput)
	}
	if !req.Model.IsValid() {
		uc.logger.Warn("GetSchedule: unknown model %q", req.Model)
		return nil, fmt.Errorf("%w: model must be FIXED or DELIVERY", ErrInvalidInput)
	}
	if req.Date != "" {
		if _, err := scheduling.ParseDate(req.Date); err != nil {
			uc.logger.Warn("GetSchedule: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 2. Загружаем состояние студии
	state, err := uc.tenantRepo.Get(ctx, req.TenantKey)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetSchedule: tenant=%s not found", req.TenantKey)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetSchedule: failed to load tenant=%s: %v", req.TenantKey, err)
		return nil, fmt.Errorf("%w: failed to load tenant: %v", ErrInternal, err)
	}

	// 3. Строим представление модели; очередь дня берется из активных записей на дату
	view := uc.scheduler.Schedule(state, req.Date, req.Model)
	if req.Date != "" {
		view.Queue = uc.scheduler.ListForDate(state, req.Date, req.Model)
	}

	resp := &Response{
		TenantKey: req.TenantKey,
		Date:      req.Date,
		Model:     req.Model,
		Queue:     view.Queue,
		History:   view.History,
	}

	// 4. Вспомогательные данные модели
	if req.Model == domain.ModelFixed {
		resp.Bays = uc.scheduler.Occupancy(state)
	} else {
		resp.ActiveRoutes = scheduling.ActiveRoutes(state, "")
	}

	uc.logger.Info("GetSchedule: tenant=%s, queue=%d, history=%d", req.TenantKey, len(resp.Queue), len(resp.History))

	return resp, nil
}

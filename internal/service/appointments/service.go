package appointments

import (
	"context"
	"errors"
	"fmt"

	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
)

// Service сервис для работы с записями вне переходов статуса
type Service struct {
	tenantRepo TenantRepository
	scheduler  Scheduler
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	tenantRepo TenantRepository,
	scheduler Scheduler,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		scheduler:  scheduler,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, tenantKey, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s in tenant=%s", id, tenantKey)

	state, err := s.loadTenant(ctx, "GetByID", tenantKey)
	if err != nil {
		return nil, err
	}

	appt := state.FindAppointment(id)
	if appt == nil {
		s.logger.Warn("GetByID: appointment id=%s not found in tenant=%s", id, tenantKey)
		return nil, ErrAppointmentNotFound
	}

	resp := models.FromDomainAppointment(appt)
	return &resp, nil
}

// AssignBay назначает или меняет бокс FIXED записи
// Для записи в EM_EXECUCAO новый бокс должен быть свободен
func (s *Service) AssignBay(ctx context.Context, tenantKey, id string, req *models.AssignBayRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("AssignBay: appointment id=%s, tenant=%s, box=%d", id, tenantKey, req.BoxID)

	var resp models.AppointmentResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadTenant(txCtx, "AssignBay", tenantKey)
		if err != nil {
			return err
		}

		appt, err := s.scheduler.AssignBay(state, id, req.BoxID)
		if err != nil {
			switch {
			case errors.Is(err, scheduling.ErrNotFound):
				s.logger.Warn("AssignBay: appointment id=%s not found in tenant=%s", id, tenantKey)
				return ErrAppointmentNotFound
			case errors.Is(err, scheduling.ErrBayConflict):
				s.logger.Warn("AssignBay: %v", err)
				return fmt.Errorf("%w: %v", ErrBayConflict, err)
			case errors.Is(err, scheduling.ErrInvalidTransition):
				s.logger.Warn("AssignBay: %v", err)
				return fmt.Errorf("%w: %v", ErrAppointmentClosed, err)
			case errors.Is(err, scheduling.ErrValidation):
				s.logger.Warn("AssignBay: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				s.logger.Error("AssignBay: unexpected scheduling error: %v", err)
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		if err := s.tenantRepo.Save(txCtx, state); err != nil {
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				s.logger.Warn("AssignBay: tenant=%s changed concurrently", tenantKey)
				return ErrConcurrentUpdate
			}
			s.logger.Error("AssignBay: failed to save tenant=%s: %v", tenantKey, err)
			return fmt.Errorf("%w: AssignBay - repository error: %v", ErrInternal, err)
		}

		resp = models.FromDomainAppointment(appt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AssignBay: appointment id=%s moved to box=%d", id, req.BoxID)
	return &resp, nil
}

// Occupancy возвращает занятость боксов студии
func (s *Service) Occupancy(ctx context.Context, tenantKey string) (*models.OccupancyResponse, error) {
	s.logger.Info("Occupancy: fetching bays for tenant=%s", tenantKey)

	state, err := s.loadTenant(ctx, "Occupancy", tenantKey)
	if err != nil {
		return nil, err
	}

	bays := models.FromBayStatuses(s.scheduler.Occupancy(state))
	free := 0
	for _, b := range bays {
		if !b.Occupied {
			free++
		}
	}

	return &models.OccupancyResponse{
		TenantKey:   tenantKey,
		BoxCapacity: state.Settings.BoxCapacity,
		Free:        free,
		Bays:        bays,
	}, nil
}

package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

// Defaults параметры новой студии из конфигурации
type Defaults struct {
	BoxCapacity         int
	SlotIntervalMinutes int
}

// Service сервис для работы с настройками студии и каталогом услуг
type Service struct {
	tenantRepo TenantRepository
	txManager  TransactionManager
	defaults   Defaults
	logger     Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	tenantRepo TenantRepository,
	txManager TransactionManager,
	defaults Defaults,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		defaults:   defaults,
		logger:     logger,
	}
}

// Provision создает студию с настройками и каталогом по умолчанию
func (s *Service) Provision(ctx context.Context, req *models.ProvisionTenantRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Provision: creating tenant=%s", req.TenantKey)

	// 1. Валидируем входные данные
	key := strings.TrimSpace(req.TenantKey)
	if err := validateTenantKey(key); err != nil {
		s.logger.Warn("Provision: validation failed: %v", err)
		return nil, err
	}
	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		name = key
	}

	// 2. Собираем состояние по умолчанию
	state := domain.NewTenantState(key, name)
	if s.defaults.BoxCapacity > 0 {
		state.Settings.BoxCapacity = s.defaults.BoxCapacity
	}
	if s.defaults.SlotIntervalMinutes > 0 {
		state.Settings.SlotIntervalMinutes = s.defaults.SlotIntervalMinutes
	}

	// 3. Сохраняем
	if err := s.tenantRepo.Create(ctx, state); err != nil {
		if errors.Is(err, tenantRepo.ErrTenantAlreadyExists) {
			s.logger.Warn("Provision: tenant=%s already exists", key)
			return nil, ErrTenantAlreadyExists
		}
		s.logger.Error("Provision: repository error for tenant=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Provision - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Provision: successfully created tenant=%s", key)
	return models.FromDomainState(state), nil
}

// Get получает настройки студии
func (s *Service) Get(ctx context.Context, tenantKey string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for tenant=%s", tenantKey)

	state, err := s.loadTenant(ctx, "Get", tenantKey)
	if err != nil {
		return nil, err
	}
	return models.FromDomainState(state), nil
}

// PublicProfile получает данные студии для страницы онлайн-записи
func (s *Service) PublicProfile(ctx context.Context, tenantKey string) (*models.PublicProfileResponse, error) {
	s.logger.Info("PublicProfile: fetching profile for tenant=%s", tenantKey)

	state, err := s.loadTenant(ctx, "PublicProfile", tenantKey)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPublicProfile(state), nil
}

// Update обновляет настройки студии
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, tenantKey string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for tenant=%s", tenantKey)

	var resp *models.SettingsResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Загружаем состояние студии
		state, err := s.loadTenant(txCtx, "Update", tenantKey)
		if err != nil {
			return err
		}

		// 2. Применяем обновления к копии и валидируем
		updated := state.Settings
		req.ApplyToSettings(&updated)
		if err := validateSettings(&updated); err != nil {
			s.logger.Warn("Update: validation failed for tenant=%s: %v", tenantKey, err)
			return err
		}

		// 3. Нельзя убрать бокс, в котором идет работа
		for _, a := range state.Appointments {
			if a.Status == domain.StatusEmExecucao && !a.IsDelivery && a.BoxID != nil && *a.BoxID > updated.BoxCapacity {
				s.logger.Warn("Update: box=%d is held by appointment id=%s", *a.BoxID, a.ID)
				return fmt.Errorf("%w: box %d is held by appointment %s", ErrBayInUse, *a.BoxID, a.ID)
			}
		}

		// 4. Записи, ожидающие работы в убранных боксах, теряют бокс и назначаются оператором заново
		for _, a := range state.Appointments {
			if a.IsActive() && !a.IsDelivery && a.BoxID != nil && *a.BoxID > updated.BoxCapacity {
				s.logger.Info("Update: appointment id=%s released box=%d", a.ID, *a.BoxID)
				a.BoxID = nil
			}
		}

		// 5. Сохраняем
		state.Settings = updated
		if err := s.save(txCtx, "Update", state); err != nil {
			return err
		}

		resp = models.FromDomainState(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated settings for tenant=%s", tenantKey)
	return resp, nil
}

// UpsertService создает услугу каталога или заменяет существующую с тем же ID
// Записи хранят снимок услуги, поэтому изменение каталога их не затрагивает
func (s *Service) UpsertService(ctx context.Context, tenantKey, serviceID string, req *models.UpsertServiceRequest) (*models.ServiceItemResponse, error) {
	s.logger.Info("UpsertService: tenant=%s, service=%s", tenantKey, serviceID)

	// 1. Валидируем входные данные
	item := req.ToDomainService(strings.TrimSpace(serviceID))
	if err := validateServiceItem(item); err != nil {
		s.logger.Warn("UpsertService: validation failed: %v", err)
		return nil, err
	}

	// 2. Заменяем или добавляем услугу
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadTenant(txCtx, "UpsertService", tenantKey)
		if err != nil {
			return err
		}

		replaced := false
		for i, existing := range state.Services {
			if existing.ID == item.ID {
				state.Services[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			state.Services = append(state.Services, item)
		}

		return s.save(txCtx, "UpsertService", state)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpsertService: successfully saved service=%s in tenant=%s", item.ID, tenantKey)
	resp := models.FromDomainService(item)
	return &resp, nil
}

// Вспомогательные методы

func (s *Service) loadTenant(ctx context.Context, op, tenantKey string) (*domain.TenantState, error) {
	state, err := s.tenantRepo.Get(ctx, tenantKey)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("%s: tenant=%s not found", op, tenantKey)
			return nil, ErrTenantNotFound
		}
		if errors.Is(err, tenantRepo.ErrVersionConflict) {
			s.logger.Warn("%s: tenant=%s locked by concurrent update", op, tenantKey)
			return nil, ErrConcurrentUpdate
		}
		s.logger.Error("%s: failed to load tenant=%s: %v", op, tenantKey, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return state, nil
}

func (s *Service) save(ctx context.Context, op string, state *domain.TenantState) error {
	if err := s.tenantRepo.Save(ctx, state); err != nil {
		if errors.Is(err, tenantRepo.ErrVersionConflict) {
			s.logger.Warn("%s: tenant=%s changed concurrently", op, state.TenantKey)
			return ErrConcurrentUpdate
		}
		s.logger.Error("%s: failed to save tenant=%s: %v", op, state.TenantKey, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

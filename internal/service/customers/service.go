package customers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers/models"
)

// Service сервис для работы с клиентами студии
type Service struct {
	tenantRepo TenantRepository
	txManager  TransactionManager
	newID      func() string
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(tenantRepo TenantRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		newID:      uuid.NewString,
		logger:     logger,
	}
}

// Create создает клиента вместе с автомобилями
// Телефон уникален в пределах студии
func (s *Service) Create(ctx context.Context, tenantKey string, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer in tenant=%s, vehicles=%d", tenantKey, len(req.Vehicles))

	// 1. Валидируем входные данные
	if err := validateCustomer(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var resp models.CustomerResponse

	// 2. Добавляем клиента в состояние студии
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadTenant(txCtx, "Create", tenantKey)
		if err != nil {
			return err
		}

		phone := digitsOnly(req.Phone)
		for _, c := range state.Customers {
			if digitsOnly(c.Phone) == phone {
				s.logger.Warn("Create: phone already used by customer id=%s", c.ID)
				return ErrDuplicatePhone
			}
		}

		customer := &domain.Customer{
			ID:       s.newID(),
			Name:     strings.TrimSpace(req.Name),
			Phone:    strings.TrimSpace(req.Phone),
			Email:    strings.TrimSpace(req.Email),
			Vehicles: make([]domain.Vehicle, 0, len(req.Vehicles)),
		}
		for _, v := range req.Vehicles {
			customer.Vehicles = append(customer.Vehicles, domain.Vehicle{
				ID:    s.newID(),
				Brand: strings.TrimSpace(v.Brand),
				Model: strings.TrimSpace(v.Model),
				Plate: normalizePlate(v.Plate),
				Color: strings.TrimSpace(v.Color),
				Type:  domain.VehicleType(v.Type),
			})
		}
		state.Customers = append(state.Customers, customer)

		if err := s.tenantRepo.Save(txCtx, state); err != nil {
			if errors.Is(err, tenantRepo.ErrVersionConflict) {
				s.logger.Warn("Create: tenant=%s changed concurrently", tenantKey)
				return ErrConcurrentUpdate
			}
			s.logger.Error("Create: failed to save tenant=%s: %v", tenantKey, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		resp = models.FromDomainCustomer(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created customer id=%s", resp.ID)
	return &resp, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, tenantKey, id string) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%s in tenant=%s", id, tenantKey)

	state, err := s.loadTenant(ctx, "GetByID", tenantKey)
	if err != nil {
		return nil, err
	}

	customer := state.FindCustomer(id)
	if customer == nil {
		s.logger.Warn("GetByID: customer id=%s not found in tenant=%s", id, tenantKey)
		return nil, ErrCustomerNotFound
	}

	resp := models.FromDomainCustomer(customer)
	return &resp, nil
}

// List возвращает клиентов студии, отсортированных по имени
// query фильтрует по подстроке имени, телефона или госномера
func (s *Service) List(ctx context.Context, tenantKey, query string) (*models.CustomerListResponse, error) {
	s.logger.Info("List: fetching customers in tenant=%s, query=%q", tenantKey, query)

	state, err := s.loadTenant(ctx, "List", tenantKey)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	list := make([]*domain.Customer, 0, len(state.Customers))
	for _, c := range state.Customers {
		if query == "" || matches(c, query) {
			list = append(list, c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})

	resp := models.FromDomainCustomers(list)
	s.logger.Info("List: found %d customers in tenant=%s", resp.Total, tenantKey)
	return &resp, nil
}

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

func matches(c *domain.Customer, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	if digits := digitsOnly(query); digits != "" && strings.Contains(digitsOnly(c.Phone), digits) {
		return true
	}
	for _, v := range c.Vehicles {
		if strings.Contains(strings.ToLower(v.Plate), query) {
			return true
		}
	}
	return false
}

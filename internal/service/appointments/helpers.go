package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
)

// loadTenant загружает состояние студии и переводит ошибки хранилища в ошибки сервиса
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

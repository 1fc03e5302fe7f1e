package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantKey) == "" {
		return fmt.Errorf("%w: tenantKey is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if req.ServiceID == nil {
		if req.Public {
			return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
		}
		if req.DurationMinutes <= 0 {
			return fmt.Errorf("%w: serviceId or positive durationMinutes is required", ErrInvalidInput)
		}
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date string, now time.Time) bool {
	return date < now.Format(domain.DateFormat)
}

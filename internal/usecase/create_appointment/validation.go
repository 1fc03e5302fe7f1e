package create_appointment

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

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	switch req.Source {
	case SourceInternal:
		if req.CustomerID == "" || req.VehicleID == "" {
			return fmt.Errorf("%w: customerId and vehicleId are required", ErrInvalidInput)
		}
	case SourcePublic:
		if req.ServiceID == nil {
			return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
		}
		if err := validateClient(req.Client); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	return nil
}

func validateClient(c *ClientInfo) error {
	if c == nil {
		return fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if normalizePhone(c.Phone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Vehicle.Plate) == "" {
		return fmt.Errorf("%w: vehicle plate is required", ErrInvalidInput)
	}
	if c.Vehicle.Type != "" && !c.Vehicle.Type.IsValid() {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, c.Vehicle.Type)
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшней
func isDateInPast(date string, now time.Time) bool {
	return date < now.Format(domain.DateFormat)
}

// normalizePhone оставляет только цифры
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizePlate приводит госномер к верхнему регистру без пробелов и дефисов
func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.NewReplacer(" ", "", "-", "").Replace(plate)
}

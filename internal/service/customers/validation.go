package customers

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers/models"
)

const (
	maxNameLength  = 120
	minPhoneDigits = 8
)

// validateCustomer валидирует данные нового клиента
func validateCustomer(req *models.CreateCustomerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxNameLength)
	}
	if len(digitsOnly(req.Phone)) < minPhoneDigits {
		return fmt.Errorf("%w: phone must contain at least %d digits", ErrInvalidInput, minPhoneDigits)
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	plates := make(map[string]struct{}, len(req.Vehicles))
	for i, v := range req.Vehicles {
		plate := normalizePlate(v.Plate)
		if plate == "" {
			return fmt.Errorf("%w: vehicles[%d]: plate is required", ErrInvalidInput, i)
		}
		if !domain.VehicleType(v.Type).IsValid() {
			return fmt.Errorf("%w: vehicles[%d]: unknown type %q", ErrInvalidInput, i, v.Type)
		}
		if _, ok := plates[plate]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlate, plate)
		}
		plates[plate] = struct{}{}
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.NewReplacer(" ", "", "-", "").Replace(plate)
}

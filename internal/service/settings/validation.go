package settings

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

var tenantKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// validateTenantKey ключ студии используется в URL: строчные латинские буквы, цифры и дефис
func validateTenantKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: tenantKey is required", ErrInvalidInput)
	}
	if len(key) > domain.MaxTenantKeyLength {
		return fmt.Errorf("%w: tenantKey exceeds %d characters", ErrInvalidInput, domain.MaxTenantKeyLength)
	}
	if !tenantKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: tenantKey may contain only a-z, 0-9 and '-'", ErrInvalidInput)
	}
	return nil
}

// validateSettings валидирует настройки студии после применения обновлений
func validateSettings(s *domain.BusinessSettings) error {
	if strings.TrimSpace(s.BusinessName) == "" {
		return fmt.Errorf("%w: businessName is required", ErrInvalidInput)
	}

	if s.BoxCapacity < domain.MinBoxCapacity || s.BoxCapacity > domain.MaxBoxCapacity {
		return fmt.Errorf("%w: boxCapacity must be between %d and %d",
			ErrInvalidInput, domain.MinBoxCapacity, domain.MaxBoxCapacity)
	}

	if s.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || s.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if s.PatioCapacity < 0 {
		return fmt.Errorf("%w: patioCapacity must not be negative", ErrInvalidInput)
	}

	if s.DeliveryTeams < 0 {
		return fmt.Errorf("%w: deliveryTeams must not be negative", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(s.OperatingDays))
	for _, rule := range s.OperatingDays {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if _, ok := seen[rule.DayOfWeek]; ok {
			return fmt.Errorf("%w: duplicate rule for dayOfWeek=%d", ErrInvalidInput, rule.DayOfWeek)
		}
		seen[rule.DayOfWeek] = struct{}{}

		if !rule.IsOpen {
			continue
		}
		open, err := rule.OpenTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: dayOfWeek=%d: openTime must be HH:MM", ErrInvalidInput, rule.DayOfWeek)
		}
		closing, err := rule.CloseTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: dayOfWeek=%d: closeTime must be HH:MM", ErrInvalidInput, rule.DayOfWeek)
		}
		if open >= closing {
			return fmt.Errorf("%w: dayOfWeek=%d: openTime must be before closeTime", ErrInvalidInput, rule.DayOfWeek)
		}
	}

	for _, c := range s.SpecialClosures {
		if _, err := time.Parse(domain.DateFormat, c.Date); err != nil {
			return fmt.Errorf("%w: special closure date %q must be YYYY-MM-DD", ErrInvalidInput, c.Date)
		}
	}

	return nil
}

// validateServiceItem валидирует услугу каталога
func validateServiceItem(item *domain.ServiceItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if item.DurationMinutes <= 0 || item.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	for _, v := range item.CompatibleVehicles {
		if !v.IsValid() {
			return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, v)
		}
	}
	return nil
}

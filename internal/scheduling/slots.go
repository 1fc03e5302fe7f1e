package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// GenerateSlots возвращает упорядоченный список времени начала записей на дату
// Шаг сетки - интервал слотов студии, а не длительность услуги
// Слот включается тогда и только тогда, когда start + duration <= closeTime
// Чистая функция: не учитывает существующие записи и текущее время
func GenerateSlots(date string, durationMinutes int, settings domain.BusinessSettings) ([]types.TimeString, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrValidation, durationMinutes)
	}

	if settings.ClosureOn(date) != nil {
		return []types.TimeString{}, nil
	}

	// Отсутствующее правило для дня недели означает выходной
	rule := settings.RuleFor(int(day.Weekday()))
	if rule == nil || !rule.IsOpen {
		return []types.TimeString{}, nil
	}

	open, err := rule.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open time of day %d: %v", ErrValidation, rule.DayOfWeek, err)
	}
	closeAt, err := rule.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close time of day %d: %v", ErrValidation, rule.DayOfWeek, err)
	}

	interval := settings.SlotIntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	slots := make([]types.TimeString, 0)
	for start := open; start+durationMinutes <= closeAt; start += interval {
		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// DropStartedSlots убирает слоты, которые уже начались, если date - сегодняшний день для now
func DropStartedSlots(slots []types.TimeString, date string, now time.Time) []types.TimeString {
	if date != now.Format(domain.DateFormat) {
		return slots
	}

	current := now.Hour()*60 + now.Minute()
	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		m, err := slot.Minutes()
		if err != nil || m <= current {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// ContainsSlot проверяет, что время лежит на сетке слотов
func ContainsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s.Compare(t) == 0 {
			return true
		}
	}
	return false
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(date string) (time.Time, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, date)
	}
	return day, nil
}

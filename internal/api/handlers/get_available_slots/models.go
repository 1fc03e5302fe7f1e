package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TenantKey       string   `json:"tenantKey"`
	Date            string   `json:"date"`
	ServiceID       *string  `json:"serviceId,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // ["08:00", "08:30", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return &AvailableSlotsResponse{
		TenantKey:       resp.TenantKey,
		Date:            resp.Date,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

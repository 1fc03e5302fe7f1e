package create_appointment

import (
	"strings"

	createAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID      string  `json:"customerId"`
	VehicleID       string  `json:"vehicleId"`
	BoxID           *int    `json:"boxId,omitempty"`
	ServiceID       *string `json:"serviceId,omitempty"`
	ServiceType     string  `json:"serviceType,omitempty"` // Без serviceId: название, длительность и цена задаются вручную
	Date            string  `json:"date"`                  // "2025-10-15"
	Time            string  `json:"time"`                  // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Price           float64 `json:"price,omitempty"`
	IsDelivery      bool    `json:"isDelivery"`
	Address         string  `json:"address,omitempty"`
	Observation     string  `json:"observation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(tenantKey string) (*createAppointment.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TenantKey:       tenantKey,
		Source:          createAppointment.SourceInternal,
		CustomerID:      strings.TrimSpace(r.CustomerID),
		VehicleID:       strings.TrimSpace(r.VehicleID),
		BoxID:           r.BoxID,
		ServiceID:       r.ServiceID,
		ServiceType:     r.ServiceType,
		Date:            strings.TrimSpace(r.Date),
		Time:            startTime,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		IsDelivery:      r.IsDelivery,
		Address:         r.Address,
		Observation:     r.Observation,
	}, nil
}

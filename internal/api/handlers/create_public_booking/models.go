package create_public_booking

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// VehicleRequest автомобиль клиента
type VehicleRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Color string `json:"color"`
	Type  string `json:"type"` // CARRO, SUV, MOTO, UTILITARIO
}

// PublicBookingRequest HTTP request model
type PublicBookingRequest struct {
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Vehicle     VehicleRequest `json:"vehicle"`
	ServiceID   string         `json:"serviceId"`
	Date        string         `json:"date"` // "2025-10-15"
	Time        string         `json:"time"` // "10:00"
	Observation string         `json:"observation,omitempty"`
}

// PublicBookingResponse HTTP response model
// Клиенту не показываются внутренние поля записи
type PublicBookingResponse struct {
	AppointmentID   string  `json:"appointmentId"`
	Status          string  `json:"status"`
	ServiceType     string  `json:"serviceType"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PublicBookingRequest) ToUseCaseRequest(tenantKey string) (*createAppointment.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	serviceID := strings.TrimSpace(r.ServiceID)
	req := &createAppointment.Request{
		TenantKey: tenantKey,
		Source:    createAppointment.SourcePublic,
		Client: &createAppointment.ClientInfo{
			Name:  r.Name,
			Phone: r.Phone,
			Email: r.Email,
			Vehicle: createAppointment.VehicleInfo{
				Brand: r.Vehicle.Brand,
				Model: r.Vehicle.Model,
				Plate: r.Vehicle.Plate,
				Color: r.Vehicle.Color,
				Type:  domain.VehicleType(strings.ToUpper(strings.TrimSpace(r.Vehicle.Type))),
			},
		},
		Date:        strings.TrimSpace(r.Date),
		Time:        startTime,
		Observation: r.Observation,
	}
	if serviceID != "" {
		req.ServiceID = &serviceID
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *PublicBookingResponse {
	a := resp.Appointment
	return &PublicBookingResponse{
		AppointmentID:   a.ID,
		Status:          string(a.Status),
		ServiceType:     a.ServiceType,
		Date:            a.Date,
		Time:            a.Time.String(),
		DurationMinutes: a.DurationMinutes,
		Price:           a.Price,
	}
}

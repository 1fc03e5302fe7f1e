package transition_appointment

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
	transitionAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/transition_appointment"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status             string  `json:"status"`
	ExpectedStatus     *string `json:"expectedStatus,omitempty"` // Статус, который видел оператор
	BoxID              *int    `json:"boxId,omitempty"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	Appointment     models.AppointmentResponse `json:"appointment"`
	PreviousStatus  string                     `json:"previousStatus"`
	Changed         bool                       `json:"changed"`
	CustomerUpdated bool                       `json:"customerUpdated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionRequest) ToUseCaseRequest(tenantKey, appointmentID string) *transitionAppointment.Request {
	req := &transitionAppointment.Request{
		TenantKey:          tenantKey,
		AppointmentID:      appointmentID,
		TargetStatus:       domain.AppointmentStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		BoxID:              r.BoxID,
		CancellationReason: strings.TrimSpace(r.CancellationReason),
	}
	if r.ExpectedStatus != nil {
		expected := domain.AppointmentStatus(strings.ToUpper(strings.TrimSpace(*r.ExpectedStatus)))
		req.ExpectedStatus = &expected
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionAppointment.Response) *TransitionResponse {
	return &TransitionResponse{
		Appointment:     models.FromDomainAppointment(resp.Appointment),
		PreviousStatus:  string(resp.PreviousStatus),
		Changed:         resp.Changed,
		CustomerUpdated: resp.CustomerUpdated,
	}
}

package transition_appointment

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// Request модель запроса на смену статуса записи
type Request struct {
	TenantKey      string
	AppointmentID  string
	TargetStatus   domain.AppointmentStatus
	ExpectedStatus *domain.AppointmentStatus
	BoxID          *int
	// CancellationReason учитывается только при переходе в CANCELADO
	CancellationReason string
}

// Response модель ответа
type Response struct {
	Appointment     *domain.Appointment
	PreviousStatus  domain.AppointmentStatus
	Changed         bool
	CustomerUpdated bool
}

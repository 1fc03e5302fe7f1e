package domain

import (
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusNovo       AppointmentStatus = "NOVO"
	StatusConfirmado AppointmentStatus = "CONFIRMADO"
	StatusEmRota     AppointmentStatus = "EM_ROTA"
	StatusEmExecucao AppointmentStatus = "EM_EXECUCAO"
	StatusFinalizado AppointmentStatus = "FINALIZADO"
	StatusCancelado  AppointmentStatus = "CANCELADO"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusNovo, StatusConfirmado, StatusEmRota, StatusEmExecucao, StatusFinalizado, StatusCancelado:
		return true
	}
	return false
}

// IsTerminal returns true for FINALIZADO and CANCELADO
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusFinalizado || s == StatusCancelado
}

// BusinessModel selects the appointment workflow
type BusinessModel string

const (
	ModelFixed    BusinessModel = "FIXED"
	ModelDelivery BusinessModel = "DELIVERY"
)

// IsValid returns true if the model is FIXED or DELIVERY
func (m BusinessModel) IsValid() bool {
	return m == ModelFixed || m == ModelDelivery
}

// ModelOf returns the business model for the isDelivery discriminator
func ModelOf(isDelivery bool) BusinessModel {
	if isDelivery {
		return ModelDelivery
	}
	return ModelFixed
}

// Appointment represents one scheduled or completed service instance
// CustomerID и VehicleID - слабые ссылки, запись не владеет клиентом
type Appointment struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	VehicleID  string `json:"vehicleId"`
	BoxID      *int   `json:"boxId,omitempty"`

	// Snapshot of the service at booking time
	ServiceID       *string `json:"serviceId,omitempty"`
	ServiceType     string  `json:"serviceType"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`

	Date   string            `json:"date"` // YYYY-MM-DD
	Time   types.TimeString  `json:"time"` // HH:MM
	Status AppointmentStatus `json:"status"`

	IsDelivery bool   `json:"isDelivery"`
	Address    string `json:"address,omitempty"`

	Observation        string `json:"observation,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// Model returns the business model of the appointment
func (a *Appointment) Model() BusinessModel {
	return ModelOf(a.IsDelivery)
}

// IsActive returns true if the appointment is in the active queue
func (a *Appointment) IsActive() bool {
	return !a.Status.IsTerminal()
}

// OccupiesBay returns true if the appointment currently holds the given bay
func (a *Appointment) OccupiesBay(boxID int) bool {
	return !a.IsDelivery && a.Status == StatusEmExecucao && a.BoxID != nil && *a.BoxID == boxID
}

// Clone returns a deep copy of the appointment
func (a *Appointment) Clone() *Appointment {
	c := *a
	if a.BoxID != nil {
		v := *a.BoxID
		c.BoxID = &v
	}
	if a.ServiceID != nil {
		v := *a.ServiceID
		c.ServiceID = &v
	}
	return &c
}

package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// EventType тип события записи
type EventType string

const (
	EventAppointmentCreated       EventType = "appointment.created"
	EventAppointmentStatusChanged EventType = "appointment.status_changed"
)

// AppointmentEvent событие, публикуемое после успешного сохранения состояния студии
type AppointmentEvent struct {
	EventID        string                    `json:"eventId"`
	Type           EventType                 `json:"type"`
	TenantKey      string                    `json:"tenantKey"`
	AppointmentID  string                    `json:"appointmentId"`
	CustomerID     string                    `json:"customerId"`
	Status         domain.AppointmentStatus  `json:"status"`
	PreviousStatus *domain.AppointmentStatus `json:"previousStatus,omitempty"`
	Model          domain.BusinessModel      `json:"model"`
	BoxID          *int                      `json:"boxId,omitempty"`
	Date           string                    `json:"date"`
	Time           string                    `json:"time"`
	Price          float64                   `json:"price"`
	Source         string                    `json:"source,omitempty"`
	OccurredAt     time.Time                 `json:"occurredAt"`
}

// NewCreatedEvent событие создания записи
func NewCreatedEvent(tenantKey, source string, appt *domain.Appointment, now time.Time) AppointmentEvent {
	e := newEvent(EventAppointmentCreated, tenantKey, appt, now)
	e.Source = source
	return e
}

// NewStatusChangedEvent событие смены статуса записи
func NewStatusChangedEvent(tenantKey string, from domain.AppointmentStatus, appt *domain.Appointment, now time.Time) AppointmentEvent {
	e := newEvent(EventAppointmentStatusChanged, tenantKey, appt, now)
	prev := from
	e.PreviousStatus = &prev
	return e
}

func newEvent(t EventType, tenantKey string, appt *domain.Appointment, now time.Time) AppointmentEvent {
	var box *int
	if appt.BoxID != nil {
		v := *appt.BoxID
		box = &v
	}
	return AppointmentEvent{
		EventID:       uuid.NewString(),
		Type:          t,
		TenantKey:     tenantKey,
		AppointmentID: appt.ID,
		CustomerID:    appt.CustomerID,
		Status:        appt.Status,
		Model:         appt.Model(),
		BoxID:         box,
		Date:          appt.Date,
		Time:          appt.Time.String(),
		Price:         appt.Price,
		OccurredAt:    now.UTC(),
	}
}

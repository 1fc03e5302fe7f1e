package models

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// Request модели

// AssignBayRequest запрос на назначение бокса
type AssignBayRequest struct {
	BoxID int `json:"boxId"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                 string   `json:"id"`
	CustomerID         string   `json:"customerId"`
	VehicleID          string   `json:"vehicleId"`
	BoxID              *int     `json:"boxId,omitempty"`
	ServiceID          *string  `json:"serviceId,omitempty"`
	ServiceType        string   `json:"serviceType"`
	Date               string   `json:"date"` // "2025-10-15"
	Time               string   `json:"time"` // "10:00"
	DurationMinutes    int      `json:"durationMinutes"`
	Price              float64  `json:"price"`
	Status             string   `json:"status"`
	Model              string   `json:"model"`
	IsDelivery         bool     `json:"isDelivery"`
	Address            string   `json:"address,omitempty"`
	Observation        string   `json:"observation,omitempty"`
	CancellationReason string   `json:"cancellationReason,omitempty"`
	AllowedNext        []string `json:"allowedNext"` // Статусы, в которые запись может перейти
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// BayResponse занятость одного бокса
type BayResponse struct {
	BoxID         int    `json:"boxId"`
	Occupied      bool   `json:"occupied"`
	AppointmentID string `json:"appointmentId,omitempty"`
}

// OccupancyResponse занятость всех боксов студии
type OccupancyResponse struct {
	TenantKey   string        `json:"tenantKey"`
	BoxCapacity int           `json:"boxCapacity"`
	Free        int           `json:"free"`
	Bays        []BayResponse `json:"bays"`
}

// Конвертеры

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:                 a.ID,
		CustomerID:         a.CustomerID,
		VehicleID:          a.VehicleID,
		ServiceType:        a.ServiceType,
		Date:               a.Date,
		Time:               a.Time.String(),
		DurationMinutes:    a.DurationMinutes,
		Price:              a.Price,
		Status:             string(a.Status),
		Model:              string(a.Model()),
		IsDelivery:         a.IsDelivery,
		Address:            a.Address,
		Observation:        a.Observation,
		CancellationReason: a.CancellationReason,
		AllowedNext:        []string{},
	}

	if a.BoxID != nil {
		box := *a.BoxID
		resp.BoxID = &box
	}
	if a.ServiceID != nil {
		id := *a.ServiceID
		resp.ServiceID = &id
	}

	for _, next := range scheduling.AllowedNext(a.Model(), a.Status) {
		resp.AllowedNext = append(resp.AllowedNext, string(next))
	}

	return resp
}

// FromDomainAppointments конвертирует список записей
func FromDomainAppointments(list []*domain.Appointment) AppointmentListResponse {
	resp := AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a))
	}
	return resp
}

// FromBayStatuses конвертирует проекцию занятости боксов
func FromBayStatuses(bays []scheduling.BayStatus) []BayResponse {
	out := make([]BayResponse, 0, len(bays))
	for _, b := range bays {
		out = append(out, BayResponse{BoxID: b.BoxID, Occupied: b.Occupied, AppointmentID: b.AppointmentID})
	}
	return out
}

package assign_bay

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgTenantNotFound      = "студия не найдена"
	msgAppointmentNotFound = "запись не найдена"
	msgBayConflict         = "бокс занят, выберите другой"
	msgAppointmentClosed   = "запись уже завершена или отменена"
	msgConcurrentUpdate    = "расписание изменено другим оператором, повторите запрос"
	msgInvalidData         = "некорректный номер бокса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tenants/{tenantKey}/appointments/{appointmentId}/bay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantKey := vars["tenantKey"]
	appointmentID := vars["appointmentId"]

	var req models.AssignBayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/bay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignBay(r.Context(), tenantKey, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrTenantNotFound):
			h.logger.Warn("PATCH /appointments/{id}/bay - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/bay - Appointment not found: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrBayConflict):
			h.logger.Warn("PATCH /appointments/{id}/bay - Bay conflict: tenant=%s, appointment_id=%s, box=%d",
				tenantKey, appointmentID, req.BoxID)
			handlers.RespondConflict(w, msgBayConflict)
		case errors.Is(err, appointments.ErrAppointmentClosed):
			h.logger.Warn("PATCH /appointments/{id}/bay - Appointment closed: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondConflict(w, msgAppointmentClosed)
		case errors.Is(err, appointments.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /appointments/{id}/bay - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/bay - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("PATCH /appointments/{id}/bay - Failed to assign bay: tenant=%s, appointment_id=%s, error=%v",
				tenantKey, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/bay - Bay assigned: tenant=%s, appointment_id=%s, box=%d",
		tenantKey, appointmentID, req.BoxID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

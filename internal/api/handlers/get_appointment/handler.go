package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments"
)

const (
	msgTenantNotFound      = "студия не найдена"
	msgAppointmentNotFound = "запись не найдена"
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

// Handle GET /api/v1/tenants/{tenantKey}/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantKey := vars["tenantKey"]
	appointmentID := vars["appointmentId"]

	result, err := h.service.GetByID(r.Context(), tenantKey, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrTenantNotFound):
			h.logger.Warn("GET /appointments/{id} - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: tenant=%s, appointment_id=%s, error=%v",
				tenantKey, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

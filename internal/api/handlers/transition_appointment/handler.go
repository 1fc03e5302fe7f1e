package transition_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	transitionAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/transition_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgTenantNotFound      = "студия не найдена"
	msgAppointmentNotFound = "запись не найдена"
	msgInvalidTransition   = "смена статуса недопустима, обновите расписание"
	msgBayConflict         = "бокс занят, выберите другой"
	msgDriverUnavailable   = "все выездные бригады заняты"
	msgConcurrentUpdate    = "расписание изменено другим оператором, повторите запрос"
	msgInvalidData         = "некорректные данные для смены статуса"
)

type Handler struct {
	useCase TransitionAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase TransitionAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tenants/{tenantKey}/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantKey := vars["tenantKey"]
	appointmentID := vars["appointmentId"]

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantKey, appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, transitionAppointment.ErrTenantNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, transitionAppointment.ErrBayConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Bay conflict: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondConflict(w, msgBayConflict)

		case errors.Is(err, transitionAppointment.ErrDriverUnavailable):
			h.logger.Warn("PATCH /appointments/{id}/status - Driver unavailable: tenant=%s, appointment_id=%s",
				tenantKey, appointmentID)
			handlers.RespondConflict(w, msgDriverUnavailable)

		case errors.Is(err, transitionAppointment.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: tenant=%s, appointment_id=%s, target=%s",
				tenantKey, appointmentID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, transitionAppointment.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /appointments/{id}/status - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to change status: tenant=%s, appointment_id=%s, error=%v",
				tenantKey, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status changed: tenant=%s, appointment_id=%s, from=%s, to=%s, changed=%t",
		tenantKey, appointmentID, result.PreviousStatus, result.Appointment.Status, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

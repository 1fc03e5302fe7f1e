package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgTenantNotFound     = "студия не найдена"
	msgInvalidData        = "некорректные данные записи"
	msgConcurrentUpdate   = "расписание изменено другим оператором, повторите запрос"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantKey}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{key}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantKey)
	if err != nil {
		h.logger.Warn("POST /tenants/{key}/appointments - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTenantNotFound):
			h.logger.Warn("POST /tenants/{key}/appointments - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{key}/appointments - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrConcurrentUpdate):
			h.logger.Warn("POST /tenants/{key}/appointments - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /tenants/{key}/appointments - Failed to create appointment: tenant=%s, error=%v",
				tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{key}/appointments - Appointment created successfully: tenant=%s, appointment_id=%s",
		tenantKey, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment))
}

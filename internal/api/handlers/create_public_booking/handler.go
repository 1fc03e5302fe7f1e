package create_public_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-DetailingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgTenantNotFound        = "студия не найдена"
	msgOnlineBookingDisabled = "онлайн-запись в этой студии отключена"
	msgSlotNotAvailable      = "выбранное время недоступно, выберите другой слот"
	msgDateInPast            = "нельзя записаться на прошедшую дату"
	msgInvalidData           = "проверьте имя, телефон, госномер и выбранную услугу"
	msgConcurrentUpdate      = "время только что заняли, обновите страницу"
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

// Handle POST /api/v1/public/{tenantKey}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	var req PublicBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/{key}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantKey)
	if err != nil {
		h.logger.Warn("POST /public/{key}/bookings - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTenantNotFound):
			h.logger.Warn("POST /public/{key}/bookings - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createAppointment.ErrOnlineBookingDisabled):
			h.logger.Warn("POST /public/{key}/bookings - Online booking disabled: tenant=%s", tenantKey)
			handlers.RespondForbidden(w, msgOnlineBookingDisabled)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /public/{key}/bookings - Slot not available: tenant=%s, date=%s, time=%s",
				tenantKey, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /public/{key}/bookings - Invalid date: tenant=%s, date=%s", tenantKey, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /public/{key}/bookings - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrConcurrentUpdate):
			h.logger.Warn("POST /public/{key}/bookings - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /public/{key}/bookings - Failed to create booking: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/{key}/bookings - Booking created successfully: tenant=%s, appointment_id=%s, new_customer=%t",
		tenantKey, result.Appointment.ID, result.CustomerCreated)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

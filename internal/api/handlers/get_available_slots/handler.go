package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate           = "дата обязательна"
	msgInvalidDuration       = "некорректная длительность, ожидается целое число минут"
	msgInvalidInput          = "некорректные параметры запроса: нужна дата YYYY-MM-DD и услуга или длительность"
	msgTenantNotFound        = "студия не найдена"
	msgServiceNotFound       = "услуга не найдена"
	msgOnlineBookingDisabled = "онлайн-запись в этой студии отключена"
	msgDateInPast            = "нельзя записаться на прошедшую дату"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	public  bool
	logger  Logger
}

// NewHandler создает обработчик; public включает проверки страницы онлайн-записи
func NewHandler(useCase GetAvailableSlotsUseCase, public bool, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		public:  public,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantKey}/available-slots
// и GET /api/v1/public/{tenantKey}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceId, durationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /{tenantKey}/available-slots - Missing date: tenant=%s", tenantKey)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &getAvailableSlots.Request{
		TenantKey: tenantKey,
		Date:      date,
		Public:    h.public,
	}

	if serviceID := query.Get("serviceId"); serviceID != "" {
		req.ServiceID = &serviceID
	}

	if raw := query.Get("durationMinutes"); raw != "" && !h.public {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /{tenantKey}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTenantNotFound):
			h.logger.Warn("GET /{tenantKey}/available-slots - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /{tenantKey}/available-slots - Service not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrOnlineBookingDisabled):
			h.logger.Warn("GET /{tenantKey}/available-slots - Online booking disabled: tenant=%s", tenantKey)
			handlers.RespondForbidden(w, msgOnlineBookingDisabled)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /{tenantKey}/available-slots - Date in the past: tenant=%s, date=%s", tenantKey, date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /{tenantKey}/available-slots - Invalid input: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /{tenantKey}/available-slots - Failed to get slots: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /{tenantKey}/available-slots - Slots retrieved successfully: tenant=%s, date=%s, slots_count=%d",
		tenantKey, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

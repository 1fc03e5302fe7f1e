package get_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-DetailingService/internal/usecase/get_schedule"
)

const (
	msgTenantNotFound = "студия не найдена"
	msgInvalidParams  = "некорректные параметры запроса: date в формате YYYY-MM-DD, model FIXED или DELIVERY"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantKey}/appointments
// Query params: date, model (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]
	query := r.URL.Query()

	req := ToUseCaseRequest(tenantKey, query.Get("date"), query.Get("model"))

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{key}/appointments - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{key}/appointments - Invalid parameters: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /tenants/{key}/appointments - Failed to get schedule: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{key}/appointments - Schedule retrieved: tenant=%s, model=%s, queue=%d",
		tenantKey, result.Model, len(result.Queue))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

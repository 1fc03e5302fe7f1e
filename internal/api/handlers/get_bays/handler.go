package get_bays

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments"
)

const msgTenantNotFound = "студия не найдена"

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

// Handle GET /api/v1/tenants/{tenantKey}/bays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	result, err := h.service.Occupancy(r.Context(), tenantKey)
	if err != nil {
		if errors.Is(err, appointments.ErrTenantNotFound) {
			h.logger.Warn("GET /tenants/{key}/bays - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}
		h.logger.Error("GET /tenants/{key}/bays - Failed to get occupancy: tenant=%s, error=%v", tenantKey, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

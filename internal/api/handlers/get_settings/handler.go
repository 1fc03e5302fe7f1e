package get_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings"
)

const msgTenantNotFound = "студия не найдена"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantKey}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	result, err := h.service.Get(r.Context(), tenantKey)
	if err != nil {
		if errors.Is(err, settings.ErrTenantNotFound) {
			h.logger.Warn("GET /tenants/{key}/settings - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}
		h.logger.Error("GET /tenants/{key}/settings - Failed to get settings: tenant=%s, error=%v", tenantKey, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{key}/settings - Settings retrieved: tenant=%s", tenantKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}

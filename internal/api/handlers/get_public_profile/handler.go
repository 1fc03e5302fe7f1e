package get_public_profile

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

// Handle GET /api/v1/public/{tenantKey}/profile
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	result, err := h.service.PublicProfile(r.Context(), tenantKey)
	if err != nil {
		if errors.Is(err, settings.ErrTenantNotFound) {
			h.logger.Warn("GET /public/{key}/profile - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}
		h.logger.Error("GET /public/{key}/profile - Failed to get profile: tenant=%s, error=%v", tenantKey, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

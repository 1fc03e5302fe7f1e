package update_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantNotFound     = "студия не найдена"
	msgBayInUse           = "нельзя уменьшить число боксов: бокс занят записью в работе"
	msgConcurrentUpdate   = "настройки изменены другим оператором, повторите запрос"
	msgInvalidData        = "некорректные настройки студии"
)

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

// Handle PUT /api/v1/tenants/{tenantKey}/settings
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{key}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tenantKey, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/{key}/settings - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, settings.ErrBayInUse):
			h.logger.Warn("PUT /tenants/{key}/settings - Bay in use: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondConflict(w, msgBayInUse)
		case errors.Is(err, settings.ErrConcurrentUpdate):
			h.logger.Warn("PUT /tenants/{key}/settings - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /tenants/{key}/settings - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("PUT /tenants/{key}/settings - Failed to update settings: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{key}/settings - Settings updated: tenant=%s", tenantKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}

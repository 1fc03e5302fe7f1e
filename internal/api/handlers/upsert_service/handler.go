package upsert_service

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
	msgConcurrentUpdate   = "каталог изменен другим оператором, повторите запрос"
	msgInvalidData        = "некорректные данные услуги"
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

// Handle PUT /api/v1/tenants/{tenantKey}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantKey := vars["tenantKey"]
	serviceID := vars["serviceId"]

	var req models.UpsertServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{key}/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertService(r.Context(), tenantKey, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/{key}/services/{id} - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, settings.ErrConcurrentUpdate):
			h.logger.Warn("PUT /tenants/{key}/services/{id} - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /tenants/{key}/services/{id} - Invalid data: tenant=%s, service_id=%s, error=%v",
				tenantKey, serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("PUT /tenants/{key}/services/{id} - Failed to save service: tenant=%s, service_id=%s, error=%v",
				tenantKey, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{key}/services/{id} - Service saved: tenant=%s, service_id=%s", tenantKey, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

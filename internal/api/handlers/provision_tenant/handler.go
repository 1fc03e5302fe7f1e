package provision_tenant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings"
	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantExists       = "студия с таким ключом уже существует"
	msgInvalidData        = "некорректный ключ или название студии"
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

// Handle POST /api/v1/tenants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ProvisionTenantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Provision(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrTenantAlreadyExists):
			h.logger.Warn("POST /tenants - Tenant already exists: tenant=%s", req.TenantKey)
			handlers.RespondConflict(w, msgTenantExists)
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /tenants - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("POST /tenants - Failed to provision tenant: tenant=%s, error=%v", req.TenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants - Tenant provisioned: tenant=%s", result.TenantKey)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package list_customers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers"
)

const msgTenantNotFound = "студия не найдена"

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantKey}/customers
// Query params: q - поиск по имени, телефону или госномеру (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]
	query := r.URL.Query().Get("q")

	result, err := h.service.List(r.Context(), tenantKey, query)
	if err != nil {
		if errors.Is(err, customers.ErrTenantNotFound) {
			h.logger.Warn("GET /tenants/{key}/customers - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}
		h.logger.Error("GET /tenants/{key}/customers - Failed to list customers: tenant=%s, error=%v", tenantKey, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{key}/customers - Customers retrieved: tenant=%s, count=%d", tenantKey, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

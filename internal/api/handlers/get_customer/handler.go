package get_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers"
)

const (
	msgTenantNotFound   = "студия не найдена"
	msgCustomerNotFound = "клиент не найден"
)

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

// Handle GET /api/v1/tenants/{tenantKey}/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantKey := vars["tenantKey"]
	customerID := vars["customerId"]

	result, err := h.service.GetByID(r.Context(), tenantKey, customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{key}/customers/{id} - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /tenants/{key}/customers/{id} - Customer not found: tenant=%s, customer_id=%s",
				tenantKey, customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)
		default:
			h.logger.Error("GET /tenants/{key}/customers/{id} - Failed to get customer: tenant=%s, customer_id=%s, error=%v",
				tenantKey, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

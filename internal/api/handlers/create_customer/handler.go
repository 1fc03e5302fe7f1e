package create_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers"
	"github.com/m04kA/SMC-DetailingService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantNotFound     = "студия не найдена"
	msgDuplicatePhone     = "клиент с таким телефоном уже зарегистрирован"
	msgDuplicatePlate     = "автомобиль с таким госномером указан дважды"
	msgConcurrentUpdate   = "данные изменены другим оператором, повторите запрос"
	msgInvalidData        = "некорректные данные клиента"
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

// Handle POST /api/v1/tenants/{tenantKey}/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantKey := mux.Vars(r)["tenantKey"]

	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{key}/customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenantKey, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrTenantNotFound):
			h.logger.Warn("POST /tenants/{key}/customers - Tenant not found: tenant=%s", tenantKey)
			handlers.RespondNotFound(w, msgTenantNotFound)
		case errors.Is(err, customers.ErrDuplicatePhone):
			h.logger.Warn("POST /tenants/{key}/customers - Duplicate phone: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgDuplicatePhone)
		case errors.Is(err, customers.ErrDuplicatePlate):
			h.logger.Warn("POST /tenants/{key}/customers - Duplicate plate: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgDuplicatePlate)
		case errors.Is(err, customers.ErrConcurrentUpdate):
			h.logger.Warn("POST /tenants/{key}/customers - Concurrent update: tenant=%s", tenantKey)
			handlers.RespondConflict(w, msgConcurrentUpdate)
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{key}/customers - Invalid data: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("POST /tenants/{key}/customers - Failed to create customer: tenant=%s, error=%v", tenantKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{key}/customers - Customer created: tenant=%s, customer_id=%s", tenantKey, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

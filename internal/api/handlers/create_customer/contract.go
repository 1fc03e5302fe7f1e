package create_customer

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/customers/models"
)

type CustomerService interface {
	Create(ctx context.Context, tenantKey string, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_customers

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, tenantKey, query string) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

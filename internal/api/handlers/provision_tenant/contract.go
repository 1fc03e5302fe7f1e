package provision_tenant

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

type SettingsService interface {
	Provision(ctx context.Context, req *models.ProvisionTenantRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

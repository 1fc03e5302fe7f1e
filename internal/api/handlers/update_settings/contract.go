package update_settings

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, tenantKey string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

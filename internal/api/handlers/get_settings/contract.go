package get_settings

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, tenantKey string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_public_profile

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

type SettingsService interface {
	PublicProfile(ctx context.Context, tenantKey string) (*models.PublicProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package upsert_service

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
)

type SettingsService interface {
	UpsertService(ctx context.Context, tenantKey, serviceID string, req *models.UpsertServiceRequest) (*models.ServiceItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

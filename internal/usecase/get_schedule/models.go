package get_schedule

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
)

// Request модель запроса расписания
type Request struct {
	TenantKey string
	// Date пустая строка означает все даты
	Date  string
	Model domain.BusinessModel
}

// Response представление расписания модели
type Response struct {
	TenantKey string
	Date      string
	Model     domain.BusinessModel
	Queue     []*domain.Appointment
	History   []*domain.Appointment
	// Bays занятость боксов, только для FIXED
	Bays []scheduling.BayStatus
	// ActiveRoutes число записей в EM_ROTA, только для DELIVERY
	ActiveRoutes int
}

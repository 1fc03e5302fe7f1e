package get_schedule

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/appointments/models"
	getSchedule "github.com/m04kA/SMC-DetailingService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	TenantKey    string                       `json:"tenantKey"`
	Date         string                       `json:"date,omitempty"`
	Model        string                       `json:"model"`
	Queue        []models.AppointmentResponse `json:"queue"`
	History      []models.AppointmentResponse `json:"history"`
	Bays         []models.BayResponse         `json:"bays,omitempty"`
	ActiveRoutes int                          `json:"activeRoutes"`
}

// ToUseCaseRequest формирует запрос из query параметров
// Без параметра model показывается расписание студии (FIXED)
func ToUseCaseRequest(tenantKey, date, model string) *getSchedule.Request {
	m := domain.BusinessModel(strings.ToUpper(strings.TrimSpace(model)))
	if m == "" {
		m = domain.ModelFixed
	}
	return &getSchedule.Request{
		TenantKey: tenantKey,
		Date:      strings.TrimSpace(date),
		Model:     m,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		TenantKey:    resp.TenantKey,
		Date:         resp.Date,
		Model:        string(resp.Model),
		Queue:        models.FromDomainAppointments(resp.Queue).Appointments,
		History:      models.FromDomainAppointments(resp.History).Appointments,
		ActiveRoutes: resp.ActiveRoutes,
	}
	if len(resp.Bays) > 0 {
		out.Bays = models.FromBayStatuses(resp.Bays)
	}
	return out
}

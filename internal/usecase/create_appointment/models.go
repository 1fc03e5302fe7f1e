package create_appointment

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// Source источник создания записи
type Source string

const (
	SourceInternal Source = "internal" // оператор студии
	SourcePublic   Source = "public"   // страница онлайн-записи
)

// VehicleInfo автомобиль клиента при публичной записи
type VehicleInfo struct {
	Brand string
	Model string
	Plate string
	Color string
	Type  domain.VehicleType
}

// ClientInfo контакты клиента при публичной записи
// Клиент ищется по телефону, автомобиль по госномеру
type ClientInfo struct {
	Name    string
	Phone   string
	Email   string
	Vehicle VehicleInfo
}

// Request модель запроса на создание записи
type Request struct {
	TenantKey string
	Source    Source

	// Для внутренней записи
	CustomerID string
	VehicleID  string
	BoxID      *int

	// Для публичной записи
	Client *ClientInfo

	ServiceID       *string
	ServiceType     string
	Date            string           // YYYY-MM-DD
	Time            types.TimeString // HH:MM
	DurationMinutes int
	Price           float64
	IsDelivery      bool
	Address         string
	Observation     string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment     *domain.Appointment
	CustomerCreated bool
}

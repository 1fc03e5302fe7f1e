package get_available_slots

import "github.com/m04kA/SMC-DetailingService/pkg/types"

// Request модель запроса доступных слотов
type Request struct {
	TenantKey       string  // Ключ студии
	Date            string  // Дата YYYY-MM-DD
	ServiceID       *string // Услуга из каталога (обязательна для публичного запроса)
	DurationMinutes int     // Длительность, если услуга не указана
	Public          bool    // Запрос со страницы онлайн-записи
}

// Response модель ответа со слотами
type Response struct {
	TenantKey       string
	Date            string
	ServiceID       *string
	DurationMinutes int
	Slots           []types.TimeString
}

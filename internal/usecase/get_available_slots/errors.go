package get_available_slots

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrOnlineBookingDisabled возвращается, когда студия не принимает онлайн-записи
	ErrOnlineBookingDisabled = errors.New("online booking is disabled")

	// ErrInvalidDate возвращается при запросе слотов на прошедшую дату
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

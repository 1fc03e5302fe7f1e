package create_appointment

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("create_appointment: tenant not found")

	// ErrOnlineBookingDisabled возвращается, когда студия не принимает онлайн-записи
	ErrOnlineBookingDisabled = errors.New("create_appointment: online booking is disabled")

	// ErrSlotNotAvailable возвращается, когда время не лежит на сетке слотов даты
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidDate возвращается при записи на прошедшую дату или уже начавшийся слот
	ErrInvalidDate = errors.New("create_appointment: invalid booking date")

	// ErrConcurrentUpdate возвращается, когда расписание изменил другой оператор
	ErrConcurrentUpdate = errors.New("create_appointment: schedule was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

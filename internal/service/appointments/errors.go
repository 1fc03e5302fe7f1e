package appointments

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBayConflict возвращается, когда бокс занят другой записью в работе
	ErrBayConflict = errors.New("bay is occupied")

	// ErrAppointmentClosed возвращается при изменении завершенной или отмененной записи
	ErrAppointmentClosed = errors.New("appointment is closed")

	// ErrConcurrentUpdate возвращается, когда расписание изменил другой оператор
	ErrConcurrentUpdate = errors.New("schedule was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

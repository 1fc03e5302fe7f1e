package transition_appointment

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("transition_appointment: tenant not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("transition_appointment: appointment not found")

	// ErrInvalidTransition возвращается, когда переход запрещен моделью записи или статус устарел
	ErrInvalidTransition = errors.New("transition_appointment: invalid status transition")

	// ErrBayConflict возвращается, когда бокс уже занят другой записью
	ErrBayConflict = errors.New("transition_appointment: bay is occupied")

	// ErrDriverUnavailable возвращается, когда все выездные бригады заняты
	ErrDriverUnavailable = errors.New("transition_appointment: no delivery team available")

	// ErrConcurrentUpdate возвращается, когда расписание изменил другой оператор
	ErrConcurrentUpdate = errors.New("transition_appointment: schedule was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_appointment: internal error")
)

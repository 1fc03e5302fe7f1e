package scheduling

import "errors"

var (
	// ErrValidation возвращается, когда обязательное поле отсутствует или некорректно
	ErrValidation = errors.New("scheduling: validation failed")

	// ErrInvalidTransition возвращается, когда смена статуса не разрешена для текущего статуса и модели
	ErrInvalidTransition = errors.New("scheduling: invalid status transition")

	// ErrBayConflict возвращается, когда бокс уже занят другой записью в статусе EM_EXECUCAO
	ErrBayConflict = errors.New("scheduling: bay is already occupied")

	// ErrNotFound возвращается, когда запись отсутствует в состоянии студии
	ErrNotFound = errors.New("scheduling: appointment not found")

	// ErrDriverUnavailable возвращается, когда все выездные бригады заняты
	ErrDriverUnavailable = errors.New("scheduling: no delivery team available")
)

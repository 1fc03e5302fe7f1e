package settings

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantAlreadyExists возвращается при повторном создании студии с тем же ключом
	ErrTenantAlreadyExists = errors.New("tenant already exists")

	// ErrBayInUse возвращается при уменьшении числа боксов ниже занятого бокса
	ErrBayInUse = errors.New("bay is in use")

	// ErrConcurrentUpdate возвращается, когда настройки изменил другой оператор
	ErrConcurrentUpdate = errors.New("tenant was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

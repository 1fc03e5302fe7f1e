package customers

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicatePhone возвращается, когда клиент с таким телефоном уже есть
	ErrDuplicatePhone = errors.New("customer with this phone already exists")

	// ErrDuplicatePlate возвращается, когда автомобиль с таким госномером уже есть у клиента
	ErrDuplicatePlate = errors.New("vehicle with this plate already exists")

	// ErrConcurrentUpdate возвращается, когда данные студии изменил другой оператор
	ErrConcurrentUpdate = errors.New("tenant was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

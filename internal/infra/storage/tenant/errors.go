package tenant

import "errors"

var (
	// ErrTenantNotFound возвращается, когда студия не найдена
	ErrTenantNotFound = errors.New("tenant.repository: tenant not found")

	// ErrTenantAlreadyExists возвращается при попытке создать студию с занятым ключом
	ErrTenantAlreadyExists = errors.New("tenant.repository: tenant already exists")

	// ErrVersionConflict возвращается, когда состояние было изменено после загрузки
	ErrVersionConflict = errors.New("tenant.repository: version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenant.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации состояния
	ErrEncode = errors.New("tenant.repository: failed to encode state")
)

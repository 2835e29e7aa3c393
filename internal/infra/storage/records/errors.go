package records

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("records.repository: booking not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("records.repository: event not found")

	// ErrInvalidFilter возвращается при противоречивом фильтре (repeat и repeat_ne)
	ErrInvalidFilter = errors.New("records.repository: invalid filter")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("records.repository: failed to scan row")
)

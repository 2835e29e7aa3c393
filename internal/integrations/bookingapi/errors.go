package bookingapi

import "errors"

var (
	// ErrTransport возвращается при сетевой ошибке или недоступности API записей
	ErrTransport = errors.New("bookingapi client: transport error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrRejected возвращается, когда API отклонил бронирование (4xx)
	ErrRejected = errors.New("bookingapi client: booking rejected")
)

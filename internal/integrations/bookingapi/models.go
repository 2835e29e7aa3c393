package bookingapi

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Пути ресурсов API записей
const (
	PathBooking = "/booking"
	PathEvent   = "/event"
)

// Records три потока записей для построения индекса занятости
type Records struct {
	Bookings        []domain.Booking
	EventsCurrent   []domain.Event
	EventsRepeating []domain.Event
}

// ErrorResponse модель ошибки от API записей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

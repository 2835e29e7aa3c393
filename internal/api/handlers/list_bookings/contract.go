package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type RecordsService interface {
	ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_booking

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type RecordsService interface {
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

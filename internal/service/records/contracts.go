package records

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// RecordsRepository интерфейс репозитория записей
type RecordsRepository interface {
	ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// RecordsRepository интерфейс репозитория записей
type RecordsRepository interface {
	ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
	ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

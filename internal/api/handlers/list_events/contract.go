package list_events

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type RecordsService interface {
	ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

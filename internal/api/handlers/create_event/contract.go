package create_event

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/records/models"
)

type RecordsService interface {
	CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*domain.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

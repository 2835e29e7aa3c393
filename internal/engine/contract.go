package engine

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/bookingapi"
)

// Transport интерфейс клиента API записей
type Transport interface {
	FetchRecords(ctx context.Context, h domain.Horizon) (*bookingapi.Records, error)
	CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
}

// Notifier получатель уведомлений движка
type Notifier interface {
	Notify(n Notification)
}

// Metrics счетчики движка
type Metrics interface {
	IncRebuild()
	IncStaleResult()
	AddSkippedRecords(n int)
	IncCommit()
	IncConfirm()
	IncRollback()
}

// Runner запускает асинхронную задачу; событие-результат задачи
// возвращается в движок и обрабатывается в общем порядке поступления.
type Runner interface {
	Go(task func(ctx context.Context) Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncRebuild()           {}
func (nopMetrics) IncStaleResult()       {}
func (nopMetrics) AddSkippedRecords(int) {}
func (nopMetrics) IncCommit()            {}
func (nopMetrics) IncConfirm()           {}
func (nopMetrics) IncRollback()          {}

package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-TableBooking/internal/availability"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/horizon"
	"github.com/m04kA/SMC-TableBooking/internal/reservation"
	"github.com/m04kA/SMC-TableBooking/internal/selection"
)

// DefaultHour час, выбранный в hour-picker'е при открытии виджета
const DefaultHour = "12:00"

const inboxSize = 64

// ErrStopped возвращается, когда движок уже остановлен
var ErrStopped = errors.New("engine: stopped")

// Engine движок доступности столиков. Владеет индексом занятости,
// выбором столика и журналом бронирований; все изменения выполняются
// последовательно в одной горутине (Run) в порядке поступления событий.
type Engine struct {
	transport Transport
	horizon   *horizon.Controller
	index     *availability.Index
	selection *selection.Machine
	ledger    *reservation.Ledger
	notifier  Notifier
	metrics   Metrics
	runner    Runner
	logger    Logger

	date   domain.DateKey
	hour   string
	slot   domain.TimeSlot
	token  uint64
	loaded bool

	inbox chan Event
	done  chan struct{}
	once  sync.Once

	ctxMu sync.Mutex
	ctx   context.Context
}

// New создает движок для плана зала tables. Выбранная дата - начало окна,
// выбранный час - DefaultHour. Данные загружаются при Start.
func New(
	transport Transport,
	horizonCtl *horizon.Controller,
	tables []domain.TableID,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Engine {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	index := availability.NewIndex()
	slot, _ := domain.HourToSlot(DefaultHour)

	e := &Engine{
		transport: transport,
		horizon:   horizonCtl,
		index:     index,
		selection: selection.NewMachine(tables),
		ledger:    reservation.NewLedger(index),
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		date:      horizonCtl.Current().Min,
		hour:      DefaultHour,
		slot:      slot,
		inbox:     make(chan Event, inboxSize),
		done:      make(chan struct{}),
		ctx:       context.Background(),
	}
	e.runner = goRunner{e: e}
	return e
}

// Start запускает первую загрузку записей для текущего окна
func (e *Engine) Start() {
	e.reload()
}

// Run обрабатывает события до отмены контекста
func (e *Engine) Run(ctx context.Context) error {
	e.ctxMu.Lock()
	e.ctx = ctx
	e.ctxMu.Unlock()
	defer e.once.Do(func() { close(e.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-e.inbox:
			if err := e.Handle(ev); err != nil {
				e.logger.Warn("Engine: %s: %v", ev.eventName(), err)
			}
		}
	}
}

// Post ставит событие в очередь. Безопасно вызывать из любых горутин.
// Возвращает false, если движок уже остановлен.
func (e *Engine) Post(ev Event) bool {
	select {
	case <-e.done:
		return false
	default:
	}

	select {
	case e.inbox <- ev:
		return true
	case <-e.done:
		return false
	}
}

// Inspect возвращает снимок состояния, синхронизируясь с циклом Run
func (e *Engine) Inspect(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if !e.Post(inspect{reply: reply}) {
		return Snapshot{}, ErrStopped
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-e.done:
		return Snapshot{}, ErrStopped
	}
}

// Handle обрабатывает одно событие. Вызывается только из цикла Run
// (или напрямую, если Run не запущен).
func (e *Engine) Handle(ev Event) error {
	switch ev := ev.(type) {
	case HorizonChanged:
		return e.onHorizonChanged(ev)
	case DateChanged:
		return e.onDateChanged(ev)
	case HourChanged:
		return e.onHourChanged(ev)
	case TableClicked:
		return e.onTableClicked(ev)
	case FormSubmitted:
		return e.onFormSubmitted(ev)
	case RecordsReceived:
		return e.onRecordsReceived(ev)
	case CommitAcked:
		return e.onCommitAcked(ev)
	case inspect:
		ev.reply <- e.Snapshot()
		return nil
	default:
		return nil
	}
}

func (e *Engine) runContext() context.Context {
	e.ctxMu.Lock()
	defer e.ctxMu.Unlock()
	return e.ctx
}

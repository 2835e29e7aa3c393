package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Kind тип уведомления
type Kind string

const (
	KindAvailabilityUpdated   Kind = "availability_updated"
	KindSelectionChanged      Kind = "selection_changed"
	KindReservationCommitted  Kind = "reservation_committed"
	KindReservationConfirmed  Kind = "reservation_confirmed"
	KindReservationRolledBack Kind = "reservation_rolled_back"
	KindLoadFailed            Kind = "load_failed"
	KindWarning               Kind = "warning"
)

// Сообщения для пользователя
const (
	msgTableTaken      = "столик уже занят"
	msgInvalidForm     = "форма бронирования заполнена некорректно"
	msgBookingFailed   = "не удалось сохранить бронирование, выбор отменен"
	msgLoadFailed      = "не удалось загрузить занятость столиков"
	msgSelectionLost   = "выбранный столик занят в это время"
	msgDateOutOfWindow = "дата вне доступного окна бронирования"
)

// Notification уведомление для отображения
type Notification struct {
	Kind    Kind
	Date    domain.DateKey
	Hour    string
	Table   domain.TableID
	TxID    uuid.UUID
	Booking *domain.Booking
	Message string
	Err     error
}

// NotifierFunc адаптер функции к Notifier
type NotifierFunc func(n Notification)

// Notify вызывает функцию
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Fanout рассылает уведомление всем получателям по порядку
type Fanout []Notifier

// Notify рассылает уведомление
func (f Fanout) Notify(n Notification) {
	for _, notifier := range f {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

// Recorder запоминает уведомления (для CLI и тестов)
type Recorder struct {
	mu    sync.Mutex
	items []Notification
	ch    chan Notification
}

// NewRecorder создает Recorder. Если buffer > 0, уведомления дополнительно
// отправляются в канал C без блокировки.
func NewRecorder(buffer int) *Recorder {
	r := &Recorder{}
	if buffer > 0 {
		r.ch = make(chan Notification, buffer)
	}
	return r
}

// Notify сохраняет уведомление
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()

	if r.ch != nil {
		select {
		case r.ch <- n:
		default:
		}
	}
}

// C канал уведомлений (nil, если буфер не задан)
func (r *Recorder) C() <-chan Notification {
	return r.ch
}

// All возвращает копию сохраненных уведомлений
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Kinds возвращает типы сохраненных уведомлений по порядку
func (r *Recorder) Kinds() []Kind {
	items := r.All()
	kinds := make([]Kind, len(items))
	for i, n := range items {
		kinds[i] = n.Kind
	}
	return kinds
}

// Reset очищает сохраненные уведомления
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

package engine

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/bookingapi"
)

// Event внешнее событие, которое обрабатывает движок
type Event interface {
	eventName() string
}

// HorizonChanged date-picker сдвинул окно видимых дат.
// Пустой Min означает "начиная с сегодня".
type HorizonChanged struct {
	Min domain.DateKey
}

// DateChanged в date-picker'е выбрана дата
type DateChanged struct {
	Date domain.DateKey
}

// HourChanged в hour-picker'е выбран час (HH:MM)
type HourChanged struct {
	Hour string
}

// TableClicked клик по столику на плане зала
type TableClicked struct {
	Table domain.TableID
}

// FormSubmitted отправлена форма бронирования.
// Дата и час берутся из текущего состояния пикеров.
type FormSubmitted struct {
	DurationHours float64
	PartySize     int
	Phone         string
	Address       string
	Starters      []string
}

// RecordsReceived пришли (или не пришли) все три потока записей для окна
type RecordsReceived struct {
	Token   uint64
	Horizon domain.Horizon
	Records *bookingapi.Records
	Err     error
}

// CommitAcked ответ API на отправку бронирования
type CommitAcked struct {
	TxID    uuid.UUID
	Booking *domain.Booking
	Err     error
}

// inspect запрос снимка состояния из чужой горутины
type inspect struct {
	reply chan Snapshot
}

func (HorizonChanged) eventName() string  { return "HorizonChanged" }
func (DateChanged) eventName() string     { return "DateChanged" }
func (HourChanged) eventName() string     { return "HourChanged" }
func (TableClicked) eventName() string    { return "TableClicked" }
func (FormSubmitted) eventName() string   { return "FormSubmitted" }
func (RecordsReceived) eventName() string { return "RecordsReceived" }
func (CommitAcked) eventName() string     { return "CommitAcked" }
func (inspect) eventName() string         { return "inspect" }

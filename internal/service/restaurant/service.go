package restaurant

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Info план зала и окно дат, доступных для бронирования
type Info struct {
	Tables       []domain.TableID `json:"tables"`
	Horizon      HorizonInfo      `json:"horizon"`
	SlotMinutes  int              `json:"slotMinutes"`
	MaxPartySize int              `json:"maxPartySize"`
	MaxDuration  int              `json:"maxDurationHours"`
}

// HorizonInfo окно дат
type HorizonInfo struct {
	Min domain.DateKey `json:"min"`
	Max domain.DateKey `json:"max"`
}

// Service отдает настройки ресторана, с которыми работает виджет
type Service struct {
	tables    []domain.TableID
	daysAhead int
	clock     Clock
}

// NewService создает сервис для плана зала tables и окна в daysAhead дней
func NewService(tables []domain.TableID, daysAhead int, clock Clock) *Service {
	return &Service{tables: tables, daysAhead: daysAhead, clock: clock}
}

// Info возвращает план зала и окно, начинающееся с сегодняшней даты
func (s *Service) Info() *Info {
	today := domain.DateKeyFromTime(s.clock.Now())
	// today получена из time.Time и всегда валидна
	max, _ := domain.AddDays(today, s.daysAhead)
	tables := make([]domain.TableID, len(s.tables))
	copy(tables, s.tables)

	return &Info{
		Tables:       tables,
		Horizon:      HorizonInfo{Min: today, Max: max},
		SlotMinutes:  domain.SlotMinutes,
		MaxPartySize: domain.MaxPartySize,
		MaxDuration:  domain.MaxDurationHours,
	}
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Booking разовое бронирование столика в том виде, в каком его хранит API записей
type Booking struct {
	ID       int64    `json:"id,omitempty"`
	Date     DateKey  `json:"date"`
	Hour     string   `json:"hour"`
	Table    TableID  `json:"table"`
	Duration float64  `json:"duration"`
	People   int      `json:"ppl"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Starters []string `json:"starters"`
}

// Event событие ресторана, занимающее столик. Ежедневные события
// игнорируют собственную дату и повторяются на каждую дату окна.
type Event struct {
	ID       int64      `json:"id,omitempty"`
	Name     string     `json:"name,omitempty"`
	Date     DateKey    `json:"date"`
	Hour     string     `json:"hour"`
	Table    TableID    `json:"table"`
	Duration float64    `json:"duration"`
	Repeat   RepeatRule `json:"repeat"`
}

// IsRepeating возвращает true, если событие повторяется
func (e *Event) IsRepeating() bool {
	return e.Repeat != "" && e.Repeat != RepeatNone
}

// Occupancy одна запись занятости: столик на дату с часа на длительность
type Occupancy struct {
	Date     DateKey
	Hour     string
	Duration float64
	Table    TableID
}

// Occupancy возвращает запись занятости бронирования
func (b *Booking) Occupancy() Occupancy {
	return Occupancy{Date: b.Date, Hour: b.Hour, Duration: b.Duration, Table: b.Table}
}

// OccupancyOn возвращает запись занятости события на указанную дату
func (e *Event) OccupancyOn(date DateKey) Occupancy {
	return Occupancy{Date: date, Hour: e.Hour, Duration: e.Duration, Table: e.Table}
}

// Slots разворачивает запись в серию слотов
func (o Occupancy) Slots() ([]TimeSlot, error) {
	start, err := HourToSlot(o.Hour)
	if err != nil {
		return nil, err
	}
	return ExpandRun(start, o.Duration)
}

// UnmarshalJSON принимает как строковое правило ("daily"), так и false/null для разовых событий
func (r *RepeatRule) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch s {
	case "false", "null", `""`, `"false"`, `"none"`:
		*r = RepeatNone
		return nil
	}

	var rule string
	if err := json.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("%w: repeat rule %s", ErrFormat, s)
	}
	*r = RepeatRule(rule)
	return nil
}

// MarshalJSON пишет разовые события как false, остальные правила строкой
func (r RepeatRule) MarshalJSON() ([]byte, error) {
	if r == "" || r == RepeatNone {
		return []byte("false"), nil
	}
	return json.Marshal(string(r))
}

// RecordsFilter фильтр выборки записей, повторяющий query-параметры API записей
type RecordsFilter struct {
	DateFrom  *DateKey // date_gte
	DateTo    *DateKey // date_lte
	Repeat    *bool    // repeat: true - только повторяющиеся события, false - только разовые
	RepeatNot *bool    // repeat_ne: инверсия Repeat
}

// Repeating сводит Repeat и RepeatNot к одному условию.
// nil - без фильтра; ok=false - условия противоречат друг другу.
func (f RecordsFilter) Repeating() (repeating *bool, ok bool) {
	if f.Repeat != nil {
		v := *f.Repeat
		repeating = &v
	}
	if f.RepeatNot != nil {
		v := !*f.RepeatNot
		if repeating != nil && *repeating != v {
			return nil, false
		}
		repeating = &v
	}
	return repeating, true
}

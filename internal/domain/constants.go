package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Сетка слотов
const (
	SlotMinutes  = 30
	SlotsPerHour = 60 / SlotMinutes
	HoursPerDay  = 24
	SlotsPerDay  = HoursPerDay * SlotsPerHour
)

// RepeatRule правило повторения события
type RepeatRule string

const (
	RepeatNone  RepeatRule = "none"
	RepeatDaily RepeatRule = "daily"
)

// Лимиты черновика бронирования
const (
	MaxPartySize     = 9
	MaxDurationHours = 12
)

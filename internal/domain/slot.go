package domain

import (
	"fmt"
	"math"
	"strconv"
)

// TimeSlot получасовой слот внутри суток.
// Хранится как номер полчаса от полуночи: 14:30 -> 29.
type TimeSlot int

// SlotFromHours строит слот из значения в часах (14.5 -> 14:30).
// Значение округляется вниз до ближайшего получаса.
func SlotFromHours(hours float64) TimeSlot {
	return TimeSlot(math.Floor(hours * SlotsPerHour))
}

// Hours возвращает значение слота в часах: 14.5 для 14:30
func (s TimeSlot) Hours() float64 {
	return float64(s) / SlotsPerHour
}

// Next возвращает следующий слот
func (s TimeSlot) Next() TimeSlot {
	return s + 1
}

// String форматирует слот как HH:MM
func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", int(s)/SlotsPerHour, (int(s)%SlotsPerHour)*SlotMinutes)
}

// HourToSlot парсит час в формате HH:MM. Минуты допускаются только 00 и 30.
func HourToSlot(hour string) (TimeSlot, error) {
	if len(hour) != 5 || hour[2] != ':' {
		return 0, fmt.Errorf("%w: hour %q must match HH:MM", ErrFormat, hour)
	}

	hh, err := strconv.Atoi(hour[:2])
	if err != nil || hh < 0 || hh >= HoursPerDay {
		return 0, fmt.Errorf("%w: hour %q has invalid HH", ErrFormat, hour)
	}

	switch hour[3:] {
	case "00":
		return TimeSlot(hh * SlotsPerHour), nil
	case "30":
		return TimeSlot(hh*SlotsPerHour + 1), nil
	default:
		return 0, fmt.Errorf("%w: hour %q minutes must be 00 or 30", ErrFormat, hour)
	}
}

// SlotCount возвращает количество получасовых слотов в длительности.
// Длительность должна быть неотрицательной и кратной 0.5 часа.
func SlotCount(durationHours float64) (int, error) {
	if math.IsNaN(durationHours) || math.IsInf(durationHours, 0) || durationHours < 0 {
		return 0, fmt.Errorf("%w: duration %v must be non-negative", ErrDomain, durationHours)
	}
	n := durationHours * SlotsPerHour
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: duration %v is not a multiple of 0.5h", ErrDomain, durationHours)
	}
	return int(n), nil
}

// ExpandRun разворачивает длительность в непрерывную серию слотов
// start, start+0.5, ..., start+duration-0.5.
// Нулевая длительность дает пустую серию. Серия, выходящая за полночь, не поддерживается.
func ExpandRun(start TimeSlot, durationHours float64) ([]TimeSlot, error) {
	n, err := SlotCount(durationHours)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= SlotsPerDay {
		return nil, fmt.Errorf("%w: slot %d is outside of the day", ErrDomain, start)
	}
	if int(start)+n > SlotsPerDay {
		return nil, fmt.Errorf("%w: %s + %vh crosses midnight", ErrDomain, start, durationHours)
	}

	run := make([]TimeSlot, n)
	for i := range run {
		run[i] = start + TimeSlot(i)
	}
	return run, nil
}

package domain

import (
	"fmt"
	"time"
)

// DateKey календарная дата в каноническом виде YYYY-MM-DD.
// Лексикографический порядок совпадает с хронологическим.
type DateKey string

// ParseDateKey проверяет и нормализует строку даты
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: date %q must match YYYY-MM-DD", ErrFormat, s)
	}
	return DateKeyFromTime(t), nil
}

// DateKeyFromTime берет дату по локальным часам
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey(t.Format(DateFormat))
}

// Time возвращает полночь даты в локальной зоне
func (d DateKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must match YYYY-MM-DD", ErrFormat, d)
	}
	return t, nil
}

// Before сравнивает даты
func (d DateKey) Before(other DateKey) bool {
	return d < other
}

func (d DateKey) String() string {
	return string(d)
}

// AddDays прибавляет n календарных дней с учетом смены месяца и года
func AddDays(d DateKey, n int) (DateKey, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return DateKeyFromTime(t.AddDate(0, 0, n)), nil
}

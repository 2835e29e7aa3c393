package domain

import "fmt"

// Horizon включительное окно видимых дат [Min, Max]
type Horizon struct {
	Min DateKey
	Max DateKey
}

// Validate проверяет формат границ и их порядок
func (h Horizon) Validate() error {
	if _, err := ParseDateKey(string(h.Min)); err != nil {
		return err
	}
	if _, err := ParseDateKey(string(h.Max)); err != nil {
		return err
	}
	if h.Max.Before(h.Min) {
		return fmt.Errorf("%w: horizon max %s is before min %s", ErrDomain, h.Max, h.Min)
	}
	return nil
}

// Contains проверяет, что дата попадает в окно
func (h Horizon) Contains(d DateKey) bool {
	return !d.Before(h.Min) && !h.Max.Before(d)
}

// Dates перечисляет даты окна от Min до Max включительно
func (h Horizon) Dates() ([]DateKey, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	dates := make([]DateKey, 0)
	for d := h.Min; !h.Max.Before(d); {
		dates = append(dates, d)
		next, err := AddDays(d, 1)
		if err != nil {
			return nil, err
		}
		d = next
	}
	return dates, nil
}

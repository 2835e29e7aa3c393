package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// requestedSlots возвращает слоты запроса: один слот для Hour или все слоты дня
func requestedSlots(req *Request) ([]domain.TimeSlot, error) {
	if _, err := domain.ParseDateKey(string(req.Date)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Hour != "" {
		slot, err := domain.HourToSlot(req.Hour)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return []domain.TimeSlot{slot}, nil
	}

	slots := make([]domain.TimeSlot, domain.SlotsPerDay)
	for i := range slots {
		slots[i] = domain.TimeSlot(i)
	}
	return slots, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date domain.DateKey, now time.Time) error {
	today := domain.DateKeyFromTime(now)
	if date.Before(today) {
		return fmt.Errorf("%w: %s is before today %s", ErrInvalidDate, date, today)
	}
	return nil
}

package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/reservation"
)

// buildDraft валидирует запрос теми же правилами, что и форма виджета
func buildDraft(req *Request) (*reservation.Draft, error) {
	draft, err := reservation.BuildDraft(req.Table, true, reservation.Form{
		Date:          req.Date,
		Hour:          req.Hour,
		DurationHours: req.Duration,
		PartySize:     req.People,
		Phone:         req.Phone,
		Address:       req.Address,
		Starters:      req.Starters,
	})
	if err != nil {
		if errors.Is(err, reservation.ErrValidation) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}
	return draft, nil
}

// validateTable проверяет, что столик есть в плане зала
func validateTable(table domain.TableID, tables map[domain.TableID]struct{}) error {
	if _, ok := tables[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше daysAhead дней
func validateDate(date domain.DateKey, now time.Time, daysAhead int) error {
	today := domain.DateKeyFromTime(now)
	if date.Before(today) {
		return fmt.Errorf("%w: %s is before today %s", ErrInvalidDate, date, today)
	}

	// Если daysAhead = 0, нет ограничений на дату
	if daysAhead == 0 {
		return nil
	}

	maxDate, err := domain.AddDays(today, daysAhead)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if maxDate.Before(date) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, daysAhead)
	}
	return nil
}

// findConflict возвращает первый слот серии, в котором столик уже занят
func findConflict(isOccupied func(domain.TimeSlot) bool, slots []domain.TimeSlot) (domain.TimeSlot, bool) {
	for _, slot := range slots {
		if isOccupied(slot) {
			return slot, true
		}
	}
	return 0, false
}

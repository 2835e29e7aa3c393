package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// RecordSource хранилище записей, из которых строится индекс
type RecordSource interface {
	ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
	ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error)
}

// Filters возвращает фильтры трех выборок для окна h: бронирования и разовые
// события за [Min, Max], повторяющиеся события, начавшиеся не позже Max.
func Filters(h domain.Horizon) (bookings, currentEvents, repeatingEvents domain.RecordsFilter) {
	minDate, maxDate := h.Min, h.Max
	no := false

	bookings = domain.RecordsFilter{DateFrom: &minDate, DateTo: &maxDate}
	currentEvents = domain.RecordsFilter{DateFrom: &minDate, DateTo: &maxDate, Repeat: &no}
	repeatingEvents = domain.RecordsFilter{DateTo: &maxDate, RepeatNot: &no}
	return bookings, currentEvents, repeatingEvents
}

// Load читает записи окна h из src и строит по ним индекс
func Load(ctx context.Context, src RecordSource, h domain.Horizon) (*Index, []SkippedRecord, error) {
	if err := h.Validate(); err != nil {
		return nil, nil, err
	}

	bookingsFilter, currentFilter, repeatingFilter := Filters(h)

	bookings, err := src.ListBookings(ctx, bookingsFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("list bookings: %w", err)
	}
	current, err := src.ListEvents(ctx, currentFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("list current events: %w", err)
	}
	repeating, err := src.ListEvents(ctx, repeatingFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("list repeating events: %w", err)
	}

	index, skipped := Build(bookings, current, repeating, h)
	return index, skipped, nil
}

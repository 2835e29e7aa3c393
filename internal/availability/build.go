package availability

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Source источник пропущенной записи
type Source string

const (
	SourceBooking        Source = "booking"
	SourceEventCurrent   Source = "event_current"
	SourceEventRepeating Source = "event_repeating"
)

// SkippedRecord запись, которую не удалось развернуть в слоты
type SkippedRecord struct {
	Source Source
	ID     int64
	Err    error
}

func (s SkippedRecord) Error() string {
	return fmt.Sprintf("%s id=%d skipped: %v", s.Source, s.ID, s.Err)
}

func (s SkippedRecord) Unwrap() error {
	return s.Err
}

// Build строит индекс с нуля из трех потоков записей.
// Бронирования и разовые события занимают свою дату, ежедневные события
// занимают каждую дату окна. Некорректные записи пропускаются и возвращаются
// списком, построение индекса при этом продолжается.
func Build(
	bookings []domain.Booking,
	currentEvents []domain.Event,
	repeatingEvents []domain.Event,
	horizon domain.Horizon,
) (*Index, []SkippedRecord) {
	ix := NewIndex()
	skipped := make([]SkippedRecord, 0)

	for i := range bookings {
		b := &bookings[i]
		if err := ix.occupy(b.Occupancy()); err != nil {
			skipped = append(skipped, SkippedRecord{Source: SourceBooking, ID: b.ID, Err: err})
		}
	}

	for i := range currentEvents {
		ev := &currentEvents[i]
		if err := ix.occupy(ev.OccupancyOn(ev.Date)); err != nil {
			skipped = append(skipped, SkippedRecord{Source: SourceEventCurrent, ID: ev.ID, Err: err})
		}
	}

	dates, err := horizon.Dates()
	if err != nil {
		// без корректного окна ежедневные события развернуть некуда
		for i := range repeatingEvents {
			skipped = append(skipped, SkippedRecord{Source: SourceEventRepeating, ID: repeatingEvents[i].ID, Err: err})
		}
		return ix, skipped
	}

	for i := range repeatingEvents {
		ev := &repeatingEvents[i]
		if ev.Repeat != domain.RepeatDaily {
			skipped = append(skipped, SkippedRecord{
				Source: SourceEventRepeating,
				ID:     ev.ID,
				Err:    fmt.Errorf("%w: unsupported repeat rule %q", domain.ErrDomain, ev.Repeat),
			})
			continue
		}
		for _, date := range dates {
			if err := ix.occupy(ev.OccupancyOn(date)); err != nil {
				skipped = append(skipped, SkippedRecord{Source: SourceEventRepeating, ID: ev.ID, Err: err})
				break
			}
		}
	}

	return ix, skipped
}

// occupy разворачивает запись и добавляет столик во все ее слоты.
// Запись проверяется целиком до первой вставки.
func (ix *Index) occupy(o domain.Occupancy) error {
	if _, err := domain.ParseDateKey(string(o.Date)); err != nil {
		return err
	}
	if o.Table == "" {
		return fmt.Errorf("%w: table id is empty", domain.ErrFormat)
	}
	slots, err := o.Slots()
	if err != nil {
		return err
	}
	for _, slot := range slots {
		ix.add(o.Date, slot, o.Table)
	}
	return nil
}

package reservation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Form значения полей формы бронирования и виджетов на момент отправки
type Form struct {
	Date          domain.DateKey
	Hour          string
	DurationHours float64
	PartySize     int
	Phone         string
	Address       string
	Starters      []string
}

// Draft проверенный черновик бронирования
type Draft struct {
	Date          domain.DateKey
	Hour          string
	Start         domain.TimeSlot
	DurationHours float64
	PartySize     int
	Table         domain.TableID
	Phone         string
	Address       string
	Starters      []string // без повторов, отсортированы
}

// BuildDraft собирает черновик из выбранного столика и формы.
// Возвращает ErrValidation, если столик не выбран или поля формы некорректны.
func BuildDraft(table domain.TableID, selected bool, form Form) (*Draft, error) {
	if !selected || table == "" {
		return nil, fmt.Errorf("%w: no table selected", ErrValidation)
	}

	if _, err := domain.ParseDateKey(string(form.Date)); err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrValidation, err)
	}

	start, err := domain.HourToSlot(form.Hour)
	if err != nil {
		return nil, fmt.Errorf("%w: hour: %v", ErrValidation, err)
	}

	if form.DurationHours <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if form.DurationHours > domain.MaxDurationHours {
		return nil, fmt.Errorf("%w: duration must not exceed %dh", ErrValidation, domain.MaxDurationHours)
	}
	if _, err := domain.ExpandRun(start, form.DurationHours); err != nil {
		return nil, fmt.Errorf("%w: duration: %v", ErrValidation, err)
	}

	if form.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be positive", ErrValidation)
	}
	if form.PartySize > domain.MaxPartySize {
		return nil, fmt.Errorf("%w: party size must not exceed %d", ErrValidation, domain.MaxPartySize)
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	address := strings.TrimSpace(form.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}

	return &Draft{
		Date:          form.Date,
		Hour:          form.Hour,
		Start:         start,
		DurationHours: form.DurationHours,
		PartySize:     form.PartySize,
		Table:         table,
		Phone:         phone,
		Address:       address,
		Starters:      uniqueStarters(form.Starters),
	}, nil
}

// Slots разворачивает черновик в серию слотов
func (d *Draft) Slots() []domain.TimeSlot {
	// длительность проверена в BuildDraft
	run, _ := domain.ExpandRun(d.Start, d.DurationHours)
	return run
}

// Payload сериализует черновик в формат хранимого бронирования
func (d *Draft) Payload() domain.Booking {
	starters := make([]string, len(d.Starters))
	copy(starters, d.Starters)
	return domain.Booking{
		Date:     d.Date,
		Hour:     d.Hour,
		Table:    d.Table,
		Duration: d.DurationHours,
		People:   d.PartySize,
		Phone:    d.Phone,
		Address:  d.Address,
		Starters: starters,
	}
}

func uniqueStarters(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

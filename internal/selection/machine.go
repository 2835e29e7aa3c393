package selection

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// DisplayState состояние отображения столика
type DisplayState int

const (
	Free DisplayState = iota
	Booked
	Selected
)

func (s DisplayState) String() string {
	switch s {
	case Free:
		return "free"
	case Booked:
		return "booked"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(s))
	}
}

// Transition результат клика по столику
type Transition int

const (
	// Unchanged состояние не изменилось
	Unchanged Transition = iota
	// Chosen столик выбран (из Empty или вместо другого столика)
	Chosen
	// Cleared повторный клик снял выбор
	Cleared
)

// Machine выбор одного столика для создаваемого бронирования.
// В состоянии Selected находится не более одного столика.
type Machine struct {
	tables   []domain.TableID
	display  map[domain.TableID]DisplayState
	selected domain.TableID
	has      bool
}

// NewMachine создает машину для плана зала. Все столики изначально свободны.
func NewMachine(tables []domain.TableID) *Machine {
	m := &Machine{
		tables:  make([]domain.TableID, 0, len(tables)),
		display: make(map[domain.TableID]DisplayState, len(tables)),
	}
	for _, t := range tables {
		if _, ok := m.display[t]; ok {
			continue
		}
		m.tables = append(m.tables, t)
		m.display[t] = Free
	}
	return m
}

// Tables возвращает столики в порядке плана зала
func (m *Machine) Tables() []domain.TableID {
	out := make([]domain.TableID, len(m.tables))
	copy(out, m.tables)
	return out
}

// Selection возвращает выбранный столик
func (m *Machine) Selection() (domain.TableID, bool) {
	return m.selected, m.has
}

// Display возвращает состояние отображения столика
func (m *Machine) Display(table domain.TableID) (DisplayState, bool) {
	s, ok := m.display[table]
	return s, ok
}

// DisplayMap возвращает копию состояния всех столиков
func (m *Machine) DisplayMap() map[domain.TableID]DisplayState {
	out := make(map[domain.TableID]DisplayState, len(m.display))
	for t, s := range m.display {
		out[t] = s
	}
	return out
}

// Click обрабатывает клик по столику:
//   - свободный столик становится выбранным, предыдущий выбор освобождается;
//   - повторный клик по выбранному снимает выбор;
//   - клик по занятому возвращает ErrTableBooked и ничего не меняет.
func (m *Machine) Click(table domain.TableID) (Transition, error) {
	state, ok := m.display[table]
	if !ok {
		return Unchanged, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	switch state {
	case Booked:
		return Unchanged, fmt.Errorf("%w: %s", ErrTableBooked, table)

	case Selected:
		m.display[table] = Free
		m.selected, m.has = "", false
		return Cleared, nil

	default:
		if m.has {
			m.display[m.selected] = Free
		}
		m.display[table] = Selected
		m.selected, m.has = table, true
		return Chosen, nil
	}
}

// Refresh заново выводит отображение из индекса занятости после смены даты,
// часа или окна. Выбор, чей столик стал занят, сбрасывается.
// Возвращает true, если выбор был сброшен.
func (m *Machine) Refresh(isOccupied func(domain.TableID) bool) bool {
	for _, t := range m.tables {
		if isOccupied(t) {
			m.display[t] = Booked
		} else {
			m.display[t] = Free
		}
	}

	if !m.has {
		return false
	}
	if m.display[m.selected] == Booked {
		m.selected, m.has = "", false
		return true
	}
	m.display[m.selected] = Selected
	return false
}

// CommitSelected переводит выбранные столики в Booked и сбрасывает выбор.
// Возвращает столики, которые были переведены.
func (m *Machine) CommitSelected() []domain.TableID {
	committed := make([]domain.TableID, 0, 1)
	for _, t := range m.tables {
		if m.display[t] == Selected {
			m.display[t] = Booked
			committed = append(committed, t)
		}
	}
	m.selected, m.has = "", false
	return committed
}

// Reset сбрасывает выбор без изменения занятости
func (m *Machine) Reset() {
	if m.has {
		m.display[m.selected] = Free
	}
	m.selected, m.has = "", false
}

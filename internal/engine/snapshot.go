package engine

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/selection"
)

// TableView состояние столика для отображения
type TableView struct {
	ID    domain.TableID
	State selection.DisplayState
}

// Snapshot состояние движка на момент запроса
type Snapshot struct {
	Date         domain.DateKey
	Hour         string
	Horizon      domain.Horizon
	Loaded       bool
	Selected     domain.TableID
	HasSelection bool
	Tables       []TableView
	Pending      int
}

// Snapshot возвращает состояние без синхронизации с Run.
// Из других горутин используйте Inspect.
func (e *Engine) Snapshot() Snapshot {
	selected, has := e.selection.Selection()
	tables := e.selection.Tables()

	views := make([]TableView, len(tables))
	for i, t := range tables {
		state, _ := e.selection.Display(t)
		views[i] = TableView{ID: t, State: state}
	}

	return Snapshot{
		Date:         e.date,
		Hour:         e.hour,
		Horizon:      e.horizon.Current(),
		Loaded:       e.loaded,
		Selected:     selected,
		HasSelection: has,
		Tables:       views,
		Pending:      len(e.ledger.Pending()),
	}
}

// State возвращает состояние столика в снимке
func (s Snapshot) State(table domain.TableID) (selection.DisplayState, bool) {
	for _, v := range s.Tables {
		if v.ID == table {
			return v.State, true
		}
	}
	return selection.Free, false
}

// IsOccupied проверяет занятость по текущему индексу (без синхронизации с Run)
func (e *Engine) IsOccupied(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool {
	return e.index.IsOccupied(date, slot, table)
}

// OccupantsAt возвращает занятые столики по текущему индексу (без синхронизации с Run)
func (e *Engine) OccupantsAt(date domain.DateKey, slot domain.TimeSlot) []domain.TableID {
	return e.index.OccupantsAt(date, slot)
}

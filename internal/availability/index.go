package availability

import (
	"sort"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Index занятость столиков: дата -> слот -> столики в порядке добавления.
// Столик присутствует в списке, если он занят на все полчаса слота.
type Index struct {
	booked map[domain.DateKey]map[domain.TimeSlot][]domain.TableID
}

// NewIndex создает пустой индекс
func NewIndex() *Index {
	return &Index{booked: make(map[domain.DateKey]map[domain.TimeSlot][]domain.TableID)}
}

// IsOccupied проверяет занятость столика. Отсутствующая дата или слот означают "свободно".
func (ix *Index) IsOccupied(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool {
	for _, t := range ix.booked[date][slot] {
		if t == table {
			return true
		}
	}
	return false
}

// OccupantsAt возвращает копию списка столиков, занятых в слот. Никогда не nil.
func (ix *Index) OccupantsAt(date domain.DateKey, slot domain.TimeSlot) []domain.TableID {
	occupants := ix.booked[date][slot]
	out := make([]domain.TableID, len(occupants))
	copy(out, occupants)
	return out
}

// OccupiedTables возвращает множество занятых столиков в слот
func (ix *Index) OccupiedTables(date domain.DateKey, slot domain.TimeSlot) map[domain.TableID]struct{} {
	set := make(map[domain.TableID]struct{})
	for _, t := range ix.booked[date][slot] {
		set[t] = struct{}{}
	}
	return set
}

// MarkOccupied идемпотентно отмечает столик занятым.
// Возвращает true, если отметка была добавлена.
func (ix *Index) MarkOccupied(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool {
	if ix.IsOccupied(date, slot, table) {
		return false
	}
	ix.add(date, slot, table)
	return true
}

// Unmark убирает все вхождения столика из слота.
// Возвращает true, если что-то было удалено.
func (ix *Index) Unmark(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool {
	slots, ok := ix.booked[date]
	if !ok {
		return false
	}
	occupants := slots[slot]
	kept := occupants[:0]
	for _, t := range occupants {
		if t != table {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(occupants) {
		return false
	}

	if len(kept) == 0 {
		delete(slots, slot)
		if len(slots) == 0 {
			delete(ix.booked, date)
		}
		return true
	}
	slots[slot] = kept
	return true
}

// Dates возвращает отсортированный список дат, для которых есть хоть одна занятость
func (ix *Index) Dates() []domain.DateKey {
	dates := make([]domain.DateKey, 0, len(ix.booked))
	for d := range ix.booked {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// add добавляет столик без проверки на дубликат (так строится индекс из записей)
func (ix *Index) add(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) {
	slots, ok := ix.booked[date]
	if !ok {
		slots = make(map[domain.TimeSlot][]domain.TableID)
		ix.booked[date] = slots
	}
	slots[slot] = append(slots[slot], table)
}

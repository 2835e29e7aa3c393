package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

func slot(h float64) domain.TimeSlot {
	return domain.SlotFromHours(h)
}

func TestBuild_Booking(t *testing.T) {
	bookings := []domain.Booking{{ID: 1, Date: "2024-06-01", Hour: "12:00", Duration: 1, Table: "3"}}

	ix, skipped := Build(bookings, nil, nil, domain.Horizon{Min: "2024-06-01", Max: "2024-06-01"})
	require.Empty(t, skipped)

	assert.True(t, ix.IsOccupied("2024-06-01", slot(12), "3"))
	assert.True(t, ix.IsOccupied("2024-06-01", slot(12.5), "3"))
	assert.False(t, ix.IsOccupied("2024-06-01", slot(13), "3"))
	assert.False(t, ix.IsOccupied("2024-06-01", slot(11.5), "3"))
	assert.False(t, ix.IsOccupied("2024-06-01", slot(12), "4"))
	assert.False(t, ix.IsOccupied("2024-06-02", slot(12), "3"))
}

func TestBuild_DailyRepeatingEvent(t *testing.T) {
	repeating := []domain.Event{{ID: 7, Date: "2019-01-01", Hour: "18:00", Duration: 2, Table: "5", Repeat: domain.RepeatDaily}}
	horizon := domain.Horizon{Min: "2024-06-01", Max: "2024-06-03"}

	ix, skipped := Build(nil, nil, repeating, horizon)
	require.Empty(t, skipped)

	occupied := map[float64]bool{18: true, 18.5: true, 19: true, 19.5: true}
	for _, d := range []domain.DateKey{"2024-06-01", "2024-06-02", "2024-06-03"} {
		for h := 0.0; h < 24; h += 0.5 {
			assert.Equal(t, occupied[h], ix.IsOccupied(d, slot(h), "5"), "date=%s hour=%v", d, h)
		}
	}
	// собственная дата события и даты вне окна не заняты
	assert.False(t, ix.IsOccupied("2019-01-01", slot(18), "5"))
	assert.False(t, ix.IsOccupied("2024-06-04", slot(18), "5"))
	assert.Equal(t, []domain.DateKey{"2024-06-01", "2024-06-02", "2024-06-03"}, ix.Dates())
}

func TestBuild_HorizonMonthRollover(t *testing.T) {
	repeating := []domain.Event{{Hour: "10:00", Duration: 0.5, Table: "1", Repeat: domain.RepeatDaily}}

	ix, skipped := Build(nil, nil, repeating, domain.Horizon{Min: "2024-12-30", Max: "2025-01-02"})
	require.Empty(t, skipped)
	assert.Len(t, ix.Dates(), 4)
	assert.True(t, ix.IsOccupied("2025-01-01", slot(10), "1"))
}

func TestBuild_SkipsMalformedRecords(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, Date: "2024-06-01", Hour: "12:15", Duration: 1, Table: "1"}, // формат часа
		{ID: 2, Date: "2024-06-01", Hour: "12:00", Duration: 0.7, Table: "2"}, // длительность
		{ID: 3, Date: "2024-06-01", Hour: "23:00", Duration: 2, Table: "3"}, // через полночь
		{ID: 4, Date: "01.06.2024", Hour: "12:00", Duration: 1, Table: "4"}, // формат даты
		{ID: 5, Date: "2024-06-01", Hour: "12:00", Duration: 1, Table: "5"},
	}
	current := []domain.Event{{ID: 10, Date: "2024-06-01", Hour: "bad", Duration: 1, Table: "6"}}
	repeating := []domain.Event{{ID: 20, Hour: "10:00", Duration: 1, Table: "7", Repeat: "weekly"}}

	ix, skipped := Build(bookings, current, repeating, domain.Horizon{Min: "2024-06-01", Max: "2024-06-02"})

	require.Len(t, skipped, 6)
	assert.ErrorIs(t, skipped[0], domain.ErrFormat)
	assert.ErrorIs(t, skipped[1], domain.ErrDomain)
	assert.ErrorIs(t, skipped[2], domain.ErrDomain)
	assert.ErrorIs(t, skipped[3], domain.ErrFormat)
	assert.Equal(t, SourceEventCurrent, skipped[4].Source)
	assert.Equal(t, int64(20), skipped[5].ID)

	// частично некорректная запись не оставляет следов
	assert.False(t, ix.IsOccupied("2024-06-01", slot(23), "3"))
	assert.True(t, ix.IsOccupied("2024-06-01", slot(12), "5"))
}

func TestBuild_ZeroDurationContributesNothing(t *testing.T) {
	bookings := []domain.Booking{{Date: "2024-06-01", Hour: "12:00", Duration: 0, Table: "1"}}

	ix, skipped := Build(bookings, nil, nil, domain.Horizon{Min: "2024-06-01", Max: "2024-06-01"})
	assert.Empty(t, skipped)
	assert.Empty(t, ix.Dates())
}

func TestBuild_SourceOrderDoesNotMatter(t *testing.T) {
	bookings := []domain.Booking{{Date: "2024-06-01", Hour: "12:00", Duration: 1, Table: "1"}}
	events := []domain.Event{{Date: "2024-06-01", Hour: "12:00", Duration: 1, Table: "1"}}
	horizon := domain.Horizon{Min: "2024-06-01", Max: "2024-06-01"}

	a, _ := Build(bookings, events, nil, horizon)
	b, _ := Build(nil, events, nil, horizon)

	// дубликаты допустимы: важен факт присутствия, а не количество
	assert.Len(t, a.OccupantsAt("2024-06-01", slot(12)), 2)
	assert.Equal(t, a.IsOccupied("2024-06-01", slot(12), "1"), b.IsOccupied("2024-06-01", slot(12), "1"))
}

func TestBuild_InvalidHorizonSkipsRepeating(t *testing.T) {
	repeating := []domain.Event{{ID: 1, Hour: "10:00", Duration: 1, Table: "1", Repeat: domain.RepeatDaily}}

	_, skipped := Build(nil, nil, repeating, domain.Horizon{Min: "2024-06-03", Max: "2024-06-01"})
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0], domain.ErrDomain)
}

func TestIndex_OccupantsAtNeverNil(t *testing.T) {
	ix := NewIndex()
	occupants := ix.OccupantsAt("2030-01-01", slot(10))
	assert.NotNil(t, occupants)
	assert.Empty(t, occupants)
	assert.False(t, ix.IsOccupied("2030-01-01", slot(10), "1"))
}

func TestIndex_MarkOccupiedIsIdempotent(t *testing.T) {
	ix := NewIndex()

	assert.True(t, ix.MarkOccupied("2024-06-01", slot(14), "7"))
	assert.False(t, ix.MarkOccupied("2024-06-01", slot(14), "7"))
	assert.Equal(t, []domain.TableID{"7"}, ix.OccupantsAt("2024-06-01", slot(14)))

	// внешняя копия не влияет на индекс
	occupants := ix.OccupantsAt("2024-06-01", slot(14))
	occupants[0] = "8"
	assert.True(t, ix.IsOccupied("2024-06-01", slot(14), "7"))
}

func TestIndex_Unmark(t *testing.T) {
	ix := NewIndex()
	ix.MarkOccupied("2024-06-01", slot(14), "7")
	ix.MarkOccupied("2024-06-01", slot(14), "8")

	assert.True(t, ix.Unmark("2024-06-01", slot(14), "7"))
	assert.False(t, ix.Unmark("2024-06-01", slot(14), "7"))
	assert.Equal(t, []domain.TableID{"8"}, ix.OccupantsAt("2024-06-01", slot(14)))

	assert.True(t, ix.Unmark("2024-06-01", slot(14), "8"))
	assert.Empty(t, ix.Dates())
	assert.False(t, ix.Unmark("2024-06-02", slot(14), "8"))
}

func TestIndex_OccupiedTables(t *testing.T) {
	ix := NewIndex()
	ix.MarkOccupied("2024-06-01", slot(9), "1")
	ix.MarkOccupied("2024-06-01", slot(9), "vip")

	set := ix.OccupiedTables("2024-06-01", slot(9))
	assert.Len(t, set, 2)
	assert.Contains(t, set, domain.TableID("vip"))
}

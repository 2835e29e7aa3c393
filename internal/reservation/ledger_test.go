package reservation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/availability"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

func newTestLedger(ix Index) *Ledger {
	l := NewLedger(ix)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	l.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return l
}

func mustDraft(t *testing.T, table domain.TableID, hour string, duration float64) *Draft {
	t.Helper()
	form := validForm()
	form.Hour = hour
	form.DurationHours = duration
	d, err := BuildDraft(table, true, form)
	require.NoError(t, err)
	return d
}

func TestLedger_CommitMarksAllSlots(t *testing.T) {
	ix := availability.NewIndex()
	l := newTestLedger(ix)

	tx := l.Commit(mustDraft(t, "7", "14:00", 1))

	assert.Equal(t, StatusPending, tx.Status)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.True(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
	assert.True(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14.5), "7"))
	assert.False(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(15), "7"))
	assert.Len(t, l.Pending(), 1)
}

func TestLedger_CommitTwiceNeverRegresses(t *testing.T) {
	ix := availability.NewIndex()
	l := newTestLedger(ix)
	draft := mustDraft(t, "7", "14:00", 1)

	first := l.Commit(draft)
	second := l.Commit(draft)

	_, err := l.Confirm(first.ID, 1)
	require.NoError(t, err)
	_, err = l.Confirm(second.ID, 1)
	require.NoError(t, err)

	assert.Contains(t, ix.OccupantsAt("2024-06-01", domain.SlotFromHours(14)), domain.TableID("7"))
	assert.Len(t, ix.OccupantsAt("2024-06-01", domain.SlotFromHours(14)), 1)
}

func TestLedger_RollbackRemovesIntroducedMarks(t *testing.T) {
	ix := availability.NewIndex()
	l := newTestLedger(ix)

	tx := l.Commit(mustDraft(t, "7", "14:00", 1))
	rolled, err := l.Rollback(tx.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusRolledBack, rolled.Status)
	assert.False(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
	assert.Empty(t, l.Pending())

	_, err = l.Rollback(tx.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestLedger_RollbackKeepsPreexistingOccupancy(t *testing.T) {
	bookings := []domain.Booking{{Date: "2024-06-01", Hour: "14:30", Duration: 0.5, Table: "7"}}
	ix, _ := availability.Build(bookings, nil, nil, domain.Horizon{Min: "2024-06-01", Max: "2024-06-01"})
	l := newTestLedger(ix)

	tx := l.Commit(mustDraft(t, "7", "14:00", 1))
	_, err := l.Rollback(tx.ID)
	require.NoError(t, err)

	assert.False(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
	assert.True(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14.5), "7"))
}

func TestLedger_RollbackKeepsMarksHeldByOtherTransaction(t *testing.T) {
	ix := availability.NewIndex()
	l := newTestLedger(ix)
	draft := mustDraft(t, "7", "14:00", 1)

	first := l.Commit(draft)
	second := l.Commit(draft)
	_, err := l.Confirm(second.ID, 1)
	require.NoError(t, err)

	_, err = l.Rollback(first.ID)
	require.NoError(t, err)
	assert.True(t, ix.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
}

func TestLedger_SettledTransaction(t *testing.T) {
	l := newTestLedger(availability.NewIndex())
	tx := l.Commit(mustDraft(t, "7", "14:00", 1))

	_, err := l.Confirm(tx.ID, 1)
	require.NoError(t, err)

	_, err = l.Confirm(tx.ID, 1)
	assert.ErrorIs(t, err, ErrTransactionSettled)
	_, err = l.Rollback(tx.ID)
	assert.ErrorIs(t, err, ErrTransactionSettled)

	_, err = l.Confirm(uuid.New(), 1)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestLedger_ReapplyCarriesPendingToNewIndex(t *testing.T) {
	l := newTestLedger(availability.NewIndex())
	pending := l.Commit(mustDraft(t, "7", "14:00", 1))
	confirmed := l.Commit(mustDraft(t, "8", "18:00", 0.5))
	_, err := l.Confirm(confirmed.ID, 1)
	require.NoError(t, err)

	fresh := availability.NewIndex()
	l.Reapply(fresh, 2)

	assert.True(t, fresh.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
	assert.False(t, fresh.IsOccupied("2024-06-01", domain.SlotFromHours(18), "8"))
	require.Len(t, l.Pending(), 1)
	assert.Equal(t, pending.ID, l.Pending()[0].ID)

	_, err = l.Rollback(pending.ID)
	require.NoError(t, err)
	assert.False(t, fresh.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
}

func TestLedger_ReapplyKeepsConfirmedUntilNewerRequest(t *testing.T) {
	l := newTestLedger(availability.NewIndex())
	tx := l.Commit(mustDraft(t, "7", "14:00", 1))
	_, err := l.Confirm(tx.ID, 3)
	require.NoError(t, err)

	// Ответ на запрос, выданный до подтверждения, бронирования еще не содержит
	stale := availability.NewIndex()
	l.Reapply(stale, 3)
	assert.True(t, stale.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
	assert.True(t, stale.IsOccupied("2024-06-01", domain.SlotFromHours(14.5), "7"))
	assert.Empty(t, l.Pending())

	fresh := availability.NewIndex()
	l.Reapply(fresh, 4)
	assert.False(t, fresh.IsOccupied("2024-06-01", domain.SlotFromHours(14), "7"))
}

func TestLedger_PendingOrder(t *testing.T) {
	l := newTestLedger(availability.NewIndex())
	a := l.Commit(mustDraft(t, "1", "12:00", 1))
	b := l.Commit(mustDraft(t, "2", "12:00", 1))

	got := l.Pending()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var floor = []domain.TableID{"1", "2", "3", "4"}

func countSelected(m *Machine) int {
	n := 0
	for _, s := range m.DisplayMap() {
		if s == Selected {
			n++
		}
	}
	return n
}

func TestClick_SelectAndToggle(t *testing.T) {
	m := NewMachine(floor)

	tr, err := m.Click("2")
	require.NoError(t, err)
	assert.Equal(t, Chosen, tr)
	sel, ok := m.Selection()
	assert.True(t, ok)
	assert.Equal(t, domain.TableID("2"), sel)

	tr, err = m.Click("2")
	require.NoError(t, err)
	assert.Equal(t, Cleared, tr)
	_, ok = m.Selection()
	assert.False(t, ok)
	state, _ := m.Display("2")
	assert.Equal(t, Free, state)
}

func TestClick_SwitchTable(t *testing.T) {
	m := NewMachine(floor)
	_, _ = m.Click("1")

	tr, err := m.Click("3")
	require.NoError(t, err)
	assert.Equal(t, Chosen, tr)

	prev, _ := m.Display("1")
	next, _ := m.Display("3")
	assert.Equal(t, Free, prev)
	assert.Equal(t, Selected, next)
	assert.Equal(t, 1, countSelected(m))
}

func TestClick_BookedTable(t *testing.T) {
	m := NewMachine(floor)
	m.Refresh(func(t domain.TableID) bool { return t == "4" })
	_, _ = m.Click("1")

	tr, err := m.Click("4")
	assert.ErrorIs(t, err, ErrTableBooked)
	assert.Equal(t, Unchanged, tr)

	sel, ok := m.Selection()
	assert.True(t, ok)
	assert.Equal(t, domain.TableID("1"), sel)
}

func TestClick_UnknownTable(t *testing.T) {
	m := NewMachine(floor)
	_, err := m.Click("99")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestClick_RandomSequenceKeepsSingleSelection(t *testing.T) {
	m := NewMachine(floor)
	m.Refresh(func(t domain.TableID) bool { return t == "3" })
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		_, _ = m.Click(floor[rnd.Intn(len(floor))])
		require.LessOrEqual(t, countSelected(m), 1)

		sel, ok := m.Selection()
		if ok {
			state, _ := m.Display(sel)
			require.Equal(t, Selected, state)
			require.Equal(t, 1, countSelected(m))
		} else {
			require.Equal(t, 0, countSelected(m))
		}
	}
}

func TestRefresh_DropsSelectionThatBecameBooked(t *testing.T) {
	m := NewMachine(floor)
	_, _ = m.Click("2")

	dropped := m.Refresh(func(t domain.TableID) bool { return t == "2" })
	assert.True(t, dropped)
	_, ok := m.Selection()
	assert.False(t, ok)
	state, _ := m.Display("2")
	assert.Equal(t, Booked, state)
}

func TestRefresh_KeepsSelectionThatIsStillFree(t *testing.T) {
	m := NewMachine(floor)
	_, _ = m.Click("2")

	dropped := m.Refresh(func(t domain.TableID) bool { return t == "1" })
	assert.False(t, dropped)
	state, _ := m.Display("2")
	assert.Equal(t, Selected, state)
	booked, _ := m.Display("1")
	assert.Equal(t, Booked, booked)
}

func TestCommitSelected(t *testing.T) {
	m := NewMachine(floor)
	_, _ = m.Click("4")

	committed := m.CommitSelected()
	assert.Equal(t, []domain.TableID{"4"}, committed)
	state, _ := m.Display("4")
	assert.Equal(t, Booked, state)
	_, ok := m.Selection()
	assert.False(t, ok)

	assert.Empty(t, m.CommitSelected())
}

func TestNewMachine_DeduplicatesTables(t *testing.T) {
	m := NewMachine([]domain.TableID{"1", "2", "1"})
	assert.Equal(t, []domain.TableID{"1", "2"}, m.Tables())
}

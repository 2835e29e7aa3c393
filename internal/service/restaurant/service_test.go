package restaurant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 12, 30, 12, 0, 0, 0, time.Local)
}

func TestService_Info(t *testing.T) {
	tables := []domain.TableID{"1", "2"}
	svc := NewService(tables, 3, fixedClock{})

	info := svc.Info()

	assert.Equal(t, []domain.TableID{"1", "2"}, info.Tables)
	assert.Equal(t, domain.DateKey("2024-12-30"), info.Horizon.Min)
	assert.Equal(t, domain.DateKey("2025-01-02"), info.Horizon.Max)
	assert.Equal(t, 30, info.SlotMinutes)

	info.Tables[0] = "changed"
	assert.Equal(t, domain.TableID("1"), svc.Info().Tables[0])
}

package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type mockSource struct {
	listBookingsFn func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
	listEventsFn   func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error)
}

func (m *mockSource) ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
	return m.listBookingsFn(ctx, filter)
}

func (m *mockSource) ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error) {
	return m.listEventsFn(ctx, filter)
}

func TestFilters(t *testing.T) {
	h := domain.Horizon{Min: "2024-06-01", Max: "2024-06-14"}
	bookings, current, repeating := Filters(h)

	assert.Equal(t, domain.DateKey("2024-06-01"), *bookings.DateFrom)
	assert.Equal(t, domain.DateKey("2024-06-14"), *bookings.DateTo)
	assert.Nil(t, bookings.Repeat)

	rep, ok := current.Repeating()
	require.True(t, ok)
	assert.False(t, *rep)
	assert.NotNil(t, current.DateFrom)

	rep, ok = repeating.Repeating()
	require.True(t, ok)
	assert.True(t, *rep)
	assert.Nil(t, repeating.DateFrom)
	assert.Equal(t, domain.DateKey("2024-06-14"), *repeating.DateTo)
}

func TestLoad(t *testing.T) {
	h := domain.Horizon{Min: "2024-06-01", Max: "2024-06-02"}
	src := &mockSource{
		listBookingsFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
			return []domain.Booking{{ID: 1, Date: "2024-06-01", Hour: "14:00", Duration: 1, Table: "7"}}, nil
		},
		listEventsFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error) {
			if rep, _ := filter.Repeating(); rep != nil && *rep {
				return []domain.Event{{ID: 2, Date: "2024-05-01", Hour: "18:00", Duration: 0.5, Table: "3", Repeat: domain.RepeatDaily}}, nil
			}
			return []domain.Event{{ID: 3, Date: "2024-06-02", Hour: "bad", Table: "1"}}, nil
		},
	}

	index, skipped, err := Load(context.Background(), src, h)
	require.NoError(t, err)

	assert.True(t, index.IsOccupied("2024-06-01", domain.SlotFromHours(14.5), "7"))
	assert.True(t, index.IsOccupied("2024-06-01", domain.SlotFromHours(18), "3"))
	assert.True(t, index.IsOccupied("2024-06-02", domain.SlotFromHours(18), "3"))
	require.Len(t, skipped, 1)
	assert.Equal(t, SourceEventCurrent, skipped[0].Source)
	assert.ErrorIs(t, skipped[0], domain.ErrFormat)
}

func TestLoad_Errors(t *testing.T) {
	storageErr := errors.New("connection refused")
	src := &mockSource{
		listBookingsFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
			return nil, nil
		},
		listEventsFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error) {
			return nil, storageErr
		},
	}

	_, _, err := Load(context.Background(), src, domain.Horizon{Min: "2024-06-01", Max: "2024-06-01"})
	assert.ErrorIs(t, err, storageErr)

	_, _, err = Load(context.Background(), src, domain.Horizon{Min: "2024-06-02", Max: "2024-06-01"})
	assert.ErrorIs(t, err, domain.ErrDomain)
}

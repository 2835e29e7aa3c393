package list_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type mockService struct {
	listFn func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error)
}

func (m *mockService) ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
	return m.listFn(ctx, filter)
}

func TestHandler_List(t *testing.T) {
	var got domain.RecordsFilter
	svc := &mockService{listFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
		got = filter
		return []domain.Booking{{ID: 1, Date: "2024-06-01", Hour: "12:00", Table: "3", Duration: 1, Starters: []string{}}}, nil
	}}
	h := NewHandler(svc, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/booking?date_gte=2024-06-01&date_lte=2024-06-14", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DateKey("2024-06-01"), *got.DateFrom)
	assert.Equal(t, domain.DateKey("2024-06-14"), *got.DateTo)
	assert.JSONEq(t, `[{"id":1,"date":"2024-06-01","hour":"12:00","table":3,"duration":1,"ppl":0,"phone":"","address":"","starters":[]}]`, w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	svc := &mockService{listFn: func(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
		return nil, errors.New("db down")
	}}
	h := NewHandler(svc, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/booking?date_gte=soon", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

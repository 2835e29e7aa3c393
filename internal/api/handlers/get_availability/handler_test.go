package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-TableBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	return m.executeFn(ctx, req)
}

func TestHandler_OK(t *testing.T) {
	uc := &mockUseCase{executeFn: func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
		assert.Equal(t, "14:00", req.Hour)
		return &getAvailability.Response{
			Date: req.Date,
			Slots: []getAvailability.Slot{
				{Hour: "14:00", Free: []domain.TableID{"1"}, Booked: []domain.TableID{"7"}},
			},
		}, nil
	}}

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/availability?date=2024-06-01&hour=14:00", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2024-06-01","slots":[{"hour":"14:00","free":[1],"booked":[7]}]}`, w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{"missing date", "/availability", nil, http.StatusBadRequest},
		{"invalid", "/availability?date=x", getAvailability.ErrInvalidInput, http.StatusBadRequest},
		{"past", "/availability?date=2020-01-01", getAvailability.ErrInvalidDate, http.StatusBadRequest},
		{"internal", "/availability?date=2024-06-01", getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{executeFn: func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
				return nil, tt.err
			}}
			w := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

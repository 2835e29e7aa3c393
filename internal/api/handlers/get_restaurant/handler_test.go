package get_restaurant

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/restaurant"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type mockService struct{}

func (mockService) Info() *restaurant.Info {
	return &restaurant.Info{
		Tables:       []domain.TableID{"1", "A"},
		Horizon:      restaurant.HorizonInfo{Min: "2024-06-01", Max: "2024-06-15"},
		SlotMinutes:  30,
		MaxPartySize: 9,
		MaxDuration:  12,
	}
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(mockService{}, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/restaurant", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tables":[1,"A"],"horizon":{"min":"2024-06-01","max":"2024-06-15"},"slotMinutes":30,"maxPartySize":9,"maxDurationHours":12}`, w.Body.String())
}

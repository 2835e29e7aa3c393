package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	recordsService "github.com/m04kA/SMC-TableBooking/internal/service/records"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service RecordsService
	logger  Logger
}

func NewHandler(service RecordsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /booking/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /booking/{id} - Invalid booking ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, recordsService.ErrBookingNotFound) {
			h.logger.Warn("GET /booking/{id} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /booking/{id} - Failed to get booking: booking_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking/{id} - Booking retrieved successfully: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

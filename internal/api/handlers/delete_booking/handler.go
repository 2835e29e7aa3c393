package delete_booking

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

// Handle DELETE /booking/{id}
// Освобождает столик: виджеты увидят изменение при следующей загрузке окна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /booking/{id} - Invalid booking ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), id); err != nil {
		if errors.Is(err, recordsService.ErrBookingNotFound) {
			h.logger.Warn("DELETE /booking/{id} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /booking/{id} - Failed to delete booking: booking_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /booking/{id} - Booking deleted: booking_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

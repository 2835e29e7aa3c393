package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/records/models"
)

const msgInvalidQuery = "некорректные параметры фильтра, даты ожидаются в формате YYYY-MM-DD"

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

// Handle GET /booking
// Query params: date_gte, date_lte (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := models.FilterFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /booking - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /booking - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking - Bookings retrieved successfully: count=%d", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, bookings)
}

package list_events

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	recordsService "github.com/m04kA/SMC-TableBooking/internal/service/records"
	"github.com/m04kA/SMC-TableBooking/internal/service/records/models"
)

const (
	msgInvalidQuery   = "некорректные параметры фильтра"
	msgConflictFilter = "параметры repeat и repeat_ne противоречат друг другу"
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

// Handle GET /event
// Query params: date_gte, date_lte, repeat, repeat_ne (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := models.FilterFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /event - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	events, err := h.service.ListEvents(r.Context(), filter)
	if err != nil {
		if errors.Is(err, recordsService.ErrInvalidInput) {
			h.logger.Warn("GET /event - Conflicting filter: %v", err)
			handlers.RespondBadRequest(w, msgConflictFilter)
			return
		}
		h.logger.Error("GET /event - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /event - Events retrieved successfully: count=%d", len(events))
	handlers.RespondJSON(w, http.StatusOK, events)
}

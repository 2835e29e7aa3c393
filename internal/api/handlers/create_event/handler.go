package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	recordsService "github.com/m04kA/SMC-TableBooking/internal/service/records"
	"github.com/m04kA/SMC-TableBooking/internal/service/records/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEvent       = "некорректные данные события"
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

// Handle POST /event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		if errors.Is(err, recordsService.ErrInvalidInput) {
			h.logger.Warn("POST /event - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEvent)
			return
		}
		h.logger.Error("POST /event - Failed to create event: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /event - Event created successfully: event_id=%d, repeat=%s", event.ID, event.Repeat)
	handlers.RespondJSON(w, http.StatusCreated, event)
}

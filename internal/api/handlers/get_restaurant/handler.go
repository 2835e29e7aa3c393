package get_restaurant

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /restaurant
// План зала и окно дат, которые виджет показывает в date-picker'е
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info := h.service.Info()
	h.logger.Info("GET /restaurant - tables=%d, horizon=%s..%s", len(info.Tables), info.Horizon.Min, info.Horizon.Max)
	handlers.RespondJSON(w, http.StatusOK, info)
}

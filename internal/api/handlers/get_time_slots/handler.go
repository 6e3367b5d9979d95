package get_time_slots

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots/models"
)

// Handler отдаёт активные слоты публично и все слоты в админке
type Handler struct {
	list   func(ctx context.Context) ([]models.SlotResponse, error)
	route  string
	logger Logger
}

// NewPublicHandler GET /api/v1/time-slots, только активные
func NewPublicHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{list: service.ListActive, route: "GET /time-slots", logger: logger}
}

// NewAdminHandler GET /api/v1/admin/time-slots, включая выключенные
func NewAdminHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{list: service.ListAll, route: "GET /admin/time-slots", logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.list(r.Context())
	if err != nil {
		h.logger.Error("%s - Failed to list time slots: %v", h.route, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}

package list_activities

import (
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
)

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/activities - Failed to list activities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, activities)
}

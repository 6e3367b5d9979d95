package create_time_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots/models"
)

const msgSlotExists = "time slot already exists"

type Handler struct {
	service TimeSlotService
	logger  Logger
}

func NewHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /admin/time-slots - Invalid request body")
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrInvalidSlotTime):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, timeslots.ErrSlotExists):
			handlers.RespondConflict(w, msgSlotExists)
		default:
			h.logger.Error("POST /admin/time-slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/time-slots - Slot created: id=%s, time=%s", slot.ID, slot.SlotTime)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}

package delete_time_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots"
)

const (
	msgInvalidSlotID = "invalid time slot id"
	msgNotFound      = "time slot not found"
)

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

// Handle DELETE /api/v1/admin/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		if errors.Is(err, timeslots.ErrSlotNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/time-slots/{id} - Failed: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/time-slots/{id} - Slot deleted: slot_id=%s", slotID)
	w.WriteHeader(http.StatusNoContent)
}

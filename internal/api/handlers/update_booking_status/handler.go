package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgInvalidStatus    = "invalid booking status"
	msgNotFound         = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: booking_id=%s", bookingID)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	adminEmail := ""
	if admin, ok := middleware.GetAdmin(r.Context()); ok {
		adminEmail = admin.Email
	}
	h.logger.Info("PATCH /admin/bookings/{id}/status - booking_id=%s set to %s by %s", bookingID, booking.Status, adminEmail)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

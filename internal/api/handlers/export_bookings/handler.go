package export_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

const msgInvalidParams = "invalid query parameters"

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

// Handle GET /api/v1/admin/bookings/export
// Те же фильтры, что у списка, но без пагинации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ExportRequest{
		Status: query.Get("status"),
		Search: strings.TrimSpace(query.Get("search")),
	}

	doc, err := h.service.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/bookings/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %s (%d bytes)", doc.Filename, len(doc.Body))
	handlers.RespondFile(w, doc.Filename, doc.ContentType, doc.Body)
}

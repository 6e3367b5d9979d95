package discard_form

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
)

const msgInvalidFormID = "invalid form id"

type Handler struct {
	service   FormService
	presenter *formview.Presenter
	logger    Logger
}

func NewHandler(service FormService, presenter *formview.Presenter, logger Logger) *Handler {
	return &Handler{
		service:   service,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle DELETE /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(mux.Vars(r)["formId"])
	if err != nil {
		h.logger.Warn("DELETE /forms/{id} - Invalid form ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormID)
		return
	}

	if err := h.service.Discard(r.Context(), formID); err != nil {
		if h.presenter.RespondError(w, err, nil) {
			h.logger.Warn("DELETE /forms/{id} - form_id=%s: %v", formID, err)
		} else {
			h.logger.Error("DELETE /forms/{id} - Failed to discard form: form_id=%s, error=%v", formID, err)
		}
		return
	}

	h.logger.Info("DELETE /forms/{id} - Form discarded: form_id=%s", formID)
	w.WriteHeader(http.StatusNoContent)
}

package get_form

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

// Handle GET /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(mux.Vars(r)["formId"])
	if err != nil {
		h.logger.Warn("GET /forms/{id} - Invalid form ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormID)
		return
	}

	form, err := h.service.Get(r.Context(), formID)
	if err != nil {
		if h.presenter.RespondError(w, err, nil) {
			h.logger.Warn("GET /forms/{id} - form_id=%s: %v", formID, err)
		} else {
			h.logger.Error("GET /forms/{id} - Failed to load form: form_id=%s, error=%v", formID, err)
		}
		return
	}

	h.presenter.RespondForm(w, http.StatusOK, form)
}

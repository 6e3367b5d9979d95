package update_form

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

// Handle PATCH /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(mux.Vars(r)["formId"])
	if err != nil {
		h.logger.Warn("PATCH /forms/{id} - Invalid form ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormID)
		return
	}

	var req UpdateFormRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("PATCH /forms/{id} - Invalid request body: form_id=%s", formID)
		return
	}

	form, err := h.service.Update(r.Context(), formID, req.ToServiceEdits())
	if err != nil {
		if h.presenter.RespondError(w, err, form) {
			h.logger.Warn("PATCH /forms/{id} - Edit rejected: form_id=%s, error=%v", formID, err)
		} else {
			h.logger.Error("PATCH /forms/{id} - Failed to update form: form_id=%s, error=%v", formID, err)
		}
		return
	}

	h.presenter.RespondForm(w, http.StatusOK, form)
}

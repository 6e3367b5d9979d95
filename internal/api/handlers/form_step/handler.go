package form_step

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
)

const msgInvalidFormID = "invalid form id"

// Handler обслуживает POST /api/v1/forms/{formId}/<step>
type Handler struct {
	action    Action
	step      string
	presenter *formview.Presenter
	logger    Logger
}

// NewHandler step используется только в логах
func NewHandler(step string, action Action, presenter *formview.Presenter, logger Logger) *Handler {
	return &Handler{
		action:    action,
		step:      step,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle POST /api/v1/forms/{formId}/{next|back|submit|reset}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(mux.Vars(r)["formId"])
	if err != nil {
		h.logger.Warn("POST /forms/{id}/%s - Invalid form ID: %v", h.step, err)
		handlers.RespondBadRequest(w, msgInvalidFormID)
		return
	}

	form, err := h.action(r.Context(), formID)
	if err != nil {
		if h.presenter.RespondError(w, err, form) {
			h.logger.Warn("POST /forms/{id}/%s - Rejected: form_id=%s, error=%v", h.step, formID, err)
		} else {
			h.logger.Error("POST /forms/{id}/%s - Failed: form_id=%s, error=%v", h.step, formID, err)
		}
		return
	}

	h.logger.Info("POST /forms/{id}/%s - OK: form_id=%s, state=%s", h.step, formID, form.State)
	h.presenter.RespondForm(w, http.StatusOK, form)
}

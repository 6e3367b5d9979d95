package create_form

import (
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
)

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

// Handle POST /api/v1/forms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /forms - Failed to create form: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /forms - Form created: form_id=%s", form.ID)
	h.presenter.RespondForm(w, http.StatusCreated, form)
}

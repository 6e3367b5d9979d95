package get_analytics

import (
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
)

type Handler struct {
	useCase AnalyticsUseCase
	logger  Logger
}

func NewHandler(useCase AnalyticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/analytics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/analytics - Failed to compute analytics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(analytics))
}

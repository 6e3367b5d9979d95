package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/auth"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/auth/models"
)

const msgInvalidCredentials = "invalid email or password"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /admin/login - Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to login: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

package quote_price

import (
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	calculator PriceCalculator
	logger     Logger
}

func NewHandler(calculator PriceCalculator, logger Logger) *Handler {
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle POST /api/v1/pricing/quote
// Тело - выбор в том же виде, что selection у формы. Частичный выбор допустим
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var sel domain.BookingSelection
	if err := handlers.DecodeJSON(r, &sel); err != nil {
		h.logger.Warn("POST /pricing/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewQuoteResponse(h.calculator.Breakdown(&sel)))
}

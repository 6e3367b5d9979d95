package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

// Handler каталог статичен, ответ собирается один раз
type Handler struct {
	response *CatalogResponse
}

func NewHandler(catalog *pricing.Catalog) *Handler {
	return &Handler{response: FromCatalog(catalog)}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	handlers.RespondJSON(w, http.StatusOK, h.response)
}

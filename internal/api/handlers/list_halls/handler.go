package list_halls

import (
	"net/http"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainHalls(h.catalog.ListHalls()))
}

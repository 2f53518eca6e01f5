package list_time_slots

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

// Handle GET /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.catalog.ListTimeSlots()
	resp := make([]string, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, s.String())
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

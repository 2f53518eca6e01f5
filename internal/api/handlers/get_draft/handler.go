package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts"
)

const msgInvalidKey = "invalid draft key"

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.service.Get(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidKey):
			h.logger.Warn("GET /drafts/{key} - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		default:
			h.logger.Error("GET /drafts/{key} - Failed to load draft: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package clear_draft

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

// Handle DELETE /api/v1/drafts/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.service.Clear(r.Context(), key); err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidKey):
			h.logger.Warn("DELETE /drafts/{key} - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		default:
			h.logger.Error("DELETE /drafts/{key} - Failed to clear draft: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

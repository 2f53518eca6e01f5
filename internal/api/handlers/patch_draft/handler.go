package patch_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts"
)

const (
	msgInvalidKey         = "invalid draft key"
	msgInvalidRequestBody = "invalid request body"
)

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

// Handle PATCH /api/v1/drafts/{key}
// Ошибки валидации полей не являются ошибкой запроса: они возвращаются вместе с черновиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var patch domain.DraftPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PATCH /drafts/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Patch(r.Context(), key, patch)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidKey):
			h.logger.Warn("PATCH /drafts/{key} - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		default:
			h.logger.Error("PATCH /drafts/{key} - Failed to update draft: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	submitBooking "github.com/m04kA/SMC-HallBooking/internal/usecase/submit_booking"
)

const (
	msgInvalidKey       = "invalid draft key"
	msgInvalidDraft     = "Please fix the highlighted fields"
	msgSlotNotAvailable = "Time slot is already booked"
	msgServiceFailure   = "Failed to create booking. Please try again."
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{key}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{DraftKey: key})
	if err != nil {
		var invalid *submitBooking.InvalidDraftError

		switch {
		case errors.As(err, &invalid):
			h.logger.Warn("POST /drafts/{key}/submit - Invalid draft: key=%s, fields=%d", key, len(invalid.Errors))
			handlers.RespondValidationError(w, msgInvalidDraft, invalid.Errors)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{key}/submit - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /drafts/{key}/submit - Slot not available: key=%s", key)
			handlers.RespondConflict(w, serverMessageOr(err, msgSlotNotAvailable))

		case errors.Is(err, submitBooking.ErrTimeout):
			h.logger.Warn("POST /drafts/{key}/submit - Booking service timed out: key=%s", key)
			handlers.RespondGatewayTimeout(w, bookingservice.TimeoutMessage)

		case errors.Is(err, submitBooking.ErrServiceFailure):
			h.logger.Error("POST /drafts/{key}/submit - Booking service failure: key=%s, error=%v", key, err)
			handlers.RespondBadGateway(w, serverMessageOr(err, msgServiceFailure))

		default:
			h.logger.Error("POST /drafts/{key}/submit - Failed to submit draft: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{key}/submit - Booking created: booking_id=%s, key=%s", result.Booking.ID, key)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func serverMessageOr(err error, fallback string) string {
	if msg := bookingservice.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}

package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	applyTransition "github.com/m04kA/SMC-HallBooking/internal/usecase/apply_transition"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "status must be one of pending, confirmed, cancelled"
	msgInvalidBookingID   = "invalid booking id"
	msgUnauthorized       = "Invalid admin token"
	msgNotFound           = "Booking not found"
	msgInvalidTransition  = "Only pending bookings can be confirmed or cancelled"
	msgServiceFailure     = "Failed to update booking status"
)

type Handler struct {
	useCase ApplyTransitionUseCase
	logger  Logger
}

func NewHandler(useCase ApplyTransitionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid status: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyTransition.Request{
		BookingID:    bookingID,
		TargetStatus: target,
		Session:      middleware.AdminSessionFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, applyTransition.ErrUnauthorized):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Unauthorized: booking_id=%s", bookingID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, applyTransition.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, applyTransition.ErrNotFound):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyTransition.ErrInvalidTransition):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid transition: %v", err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, applyTransition.ErrTimeout):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Booking service timed out: booking_id=%s", bookingID)
			handlers.RespondGatewayTimeout(w, bookingservice.TimeoutMessage)

		case errors.Is(err, applyTransition.ErrServiceFailure):
			h.logger.Error("PUT /admin/bookings/{id}/status - Booking service failure: %v", err)
			msg := bookingservice.ServerMessage(err)
			if msg == "" {
				msg = msgServiceFailure
			}
			handlers.RespondBadGateway(w, msg)

		default:
			h.logger.Error("PUT /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id}/status - Status updated: booking_id=%s, status=%s",
		bookingID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

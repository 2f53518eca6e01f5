package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	getAvailableSlots "github.com/m04kA/SMC-HallBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "date is required"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgHallNotFound   = "hall not found"
	msgServiceFailure = "Failed to check availability"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID := domain.HallID(mux.Vars(r)["hallId"])

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /halls/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{HallID: hallID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/available-slots - Hall not found: hall_id=%s", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /halls/{id}/available-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrTimeout):
			h.logger.Warn("GET /halls/{id}/available-slots - Booking service timed out: hall_id=%s", hallID)
			handlers.RespondGatewayTimeout(w, bookingservice.TimeoutMessage)

		case errors.Is(err, getAvailableSlots.ErrServiceFailure):
			h.logger.Error("GET /halls/{id}/available-slots - Booking service failure: %v", err)
			handlers.RespondBadGateway(w, msgServiceFailure)

		default:
			h.logger.Error("GET /halls/{id}/available-slots - Failed to get slots: hall_id=%s, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/available-slots - Slots retrieved: hall_id=%s, date=%s, slots_count=%d",
		hallID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package list_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HallBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-HallBooking/internal/service/bookings"
)

const (
	msgInvalidPartition = "partition must be one of upcoming, past, cancelled"
	msgUnauthorized     = "Invalid admin token"
	msgServiceFailure   = "Failed to fetch bookings"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?partition=upcoming|past|cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var partition *domain.Partition
	if raw := r.URL.Query().Get("partition"); raw != "" {
		p, err := domain.ParsePartition(raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid partition: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartition)
			return
		}
		partition = &p
	}

	session := middleware.AdminSessionFromContext(r.Context())

	result, err := h.service.List(r.Context(), session, partition)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthorized):
			h.logger.Warn("GET /admin/bookings - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, bookings.ErrTimeout):
			h.logger.Warn("GET /admin/bookings - Booking service timed out")
			handlers.RespondGatewayTimeout(w, bookingservice.TimeoutMessage)

		case errors.Is(err, bookings.ErrServiceFailure):
			h.logger.Error("GET /admin/bookings - Booking service failure: %v", err)
			msg := bookingservice.ServerMessage(err)
			if msg == "" {
				msg = msgServiceFailure
			}
			handlers.RespondBadGateway(w, msg)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

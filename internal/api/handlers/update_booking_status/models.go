package update_booking_status

import (
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	applyTransition "github.com/m04kA/SMC-HallBooking/internal/usecase/apply_transition"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID     string               `json:"id"`
	HallID domain.HallID        `json:"hallId"`
	Status domain.BookingStatus `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *applyTransition.Response) UpdateStatusResponse {
	return UpdateStatusResponse{
		ID:     resp.Booking.ID,
		HallID: resp.Booking.HallID,
		Status: resp.Booking.Status,
	}
}

package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-HallBooking/internal/usecase/submit_booking"
)

// BookingResponse подтвержденное бронирование
type BookingResponse struct {
	ID              string               `json:"id"`
	HallID          domain.HallID        `json:"hallId"`
	EventDate       time.Time            `json:"eventDate"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	GuestCount      int                  `json:"guestCount"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Status          domain.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"totalPrice"`
	CreatedAt       *time.Time           `json:"createdAt,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	DraftCleared bool            `json:"draftCleared"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *submitBooking.Response) SubmitBookingResponse {
	b := resp.Booking
	out := SubmitBookingResponse{
		Booking: BookingResponse{
			ID:              b.ID,
			HallID:          b.HallID,
			EventDate:       b.EventDate,
			StartTime:       b.StartTime.String(),
			EndTime:         b.EndTime.String(),
			CustomerName:    b.CustomerName,
			CustomerEmail:   b.CustomerEmail,
			CustomerPhone:   b.CustomerPhone,
			GuestCount:      b.GuestCount,
			SpecialRequests: b.SpecialRequests,
			Status:          b.Status,
			TotalPrice:      b.TotalPrice,
		},
		DraftCleared: resp.DraftCleared,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		out.Booking.CreatedAt = &createdAt
	}
	return out
}

package models

import (
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// BookingResponse бронирование в админском списке
type BookingResponse struct {
	ID              string               `json:"id"`
	HallID          domain.HallID        `json:"hallId"`
	EventDate       string               `json:"eventDate"` // YYYY-MM-DD в часовом поясе залов
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
	Partition       domain.Partition     `json:"partition"`
}

// BookingListResponse список бронирований с количеством по вкладкам
type BookingListResponse struct {
	Bookings []BookingResponse        `json:"bookings"`
	Counts   map[domain.Partition]int `json:"counts"`
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b domain.Booking, partition domain.Partition, loc *time.Location) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		HallID:          b.HallID,
		EventDate:       b.EventDate.In(loc).Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		Partition:       partition,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

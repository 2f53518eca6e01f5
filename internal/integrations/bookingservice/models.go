package bookingservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// ID идентификатор бронирования; сервис может вернуть его строкой или числом
type ID string

// UnmarshalJSON принимает "42" и 42
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("booking id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Features список особенностей зала; сервис может вернуть массив или строку через запятую
type Features []string

// UnmarshalJSON принимает ["a","b"] и "a, b"
func (f *Features) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*f = out
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = list
	return nil
}

// Hall зал в ответе GET /halls
type Hall struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	BasePrice float64  `json:"basePrice"`
	Features  Features `json:"features"`
}

// ToDomain конвертирует зал сервиса в domain.Hall
func (h Hall) ToDomain() domain.Hall {
	return domain.Hall{
		ID:        domain.HallID(h.ID),
		Name:      h.Name,
		Capacity:  h.Capacity,
		BasePrice: h.BasePrice,
		Features:  []string(h.Features),
	}
}

// CreateBookingRequest тело POST /bookings
type CreateBookingRequest struct {
	HallID          string               `json:"hallId"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	GuestCount      int                  `json:"guestCount"`
	EventDate       string               `json:"eventDate"` // RFC 3339, UTC
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Status          domain.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"totalPrice"`
}

// UpdateStatusRequest тело PUT /admin/bookings/{id}/status
type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// AvailabilityResponse ответ GET /availability
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Booking бронирование в ответах сервиса
type Booking struct {
	ID              ID                   `json:"id"`
	HallID          string               `json:"hallId"`
	EventDate       time.Time            `json:"eventDate"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	GuestCount      int                  `json:"guestCount"`
	SpecialRequests string               `json:"specialRequests"`
	Status          domain.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"totalPrice"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToDomain конвертирует бронирование сервиса в domain.Booking
func (b Booking) ToDomain() domain.Booking {
	return domain.Booking{
		ID:              string(b.ID),
		HallID:          domain.HallID(b.HallID),
		EventDate:       b.EventDate,
		StartTime:       types.TimeString(b.StartTime),
		EndTime:         types.TimeString(b.EndTime),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

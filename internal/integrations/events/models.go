package events

import "time"

// Типы событий бронирований
const (
	TypeBookingSubmitted     = "booking.submitted"
	TypeBookingStatusChanged = "booking.status_changed"
)

// Event сообщение топика booking.events
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	HallID     string    `json:"hallId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

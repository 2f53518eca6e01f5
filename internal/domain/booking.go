package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// ErrInvalidStatus возвращается для неизвестного статуса бронирования
var ErrInvalidStatus = errors.New("invalid booking status")

// BookingStatus represents the status of a booking.
// The set is closed: values are only produced by ParseBookingStatus or the constants below.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions машина состояний бронирования.
// confirmed и cancelled - терминальные статусы
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {},
	StatusCancelled: {},
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsTerminal returns true if no transition leaves the status
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo returns true if the state machine allows s -> target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	return allowedTransitions[s][target]
}

func (s BookingStatus) String() string {
	return string(s)
}

// UnmarshalJSON отклоняет статусы вне машины состояний
func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	parsed, err := ParseBookingStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Booking represents a server-confirmed hall reservation.
// The client holds read-only copies fetched from the booking service.
type Booking struct {
	ID              string
	HallID          HallID
	EventDate       time.Time // начало события (дата + startTime), как вернул сервис
	StartTime       types.TimeString
	EndTime         types.TimeString
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuestCount      int
	SpecialRequests string
	Status          BookingStatus
	TotalPrice      float64
	CreatedAt       time.Time
}

// CanTransitionTo returns true if the booking may move to target
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	return b.Status.CanTransitionTo(target)
}

// AdminSession явный контекст авторизации администратора.
// Токен непрозрачен: движок его не разбирает, а только передает сервису бронирований
type AdminSession struct {
	Token string
}

// NewAdminSession создает сессию из bearer токена
func NewAdminSession(token string) AdminSession {
	return AdminSession{Token: token}
}

// IsZero returns true if no credential was supplied
func (s AdminSession) IsZero() bool {
	return s.Token == ""
}

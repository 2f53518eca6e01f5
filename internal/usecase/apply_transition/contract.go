package apply_transition

import (
	"context"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	ListAdminBookings(ctx context.Context, token string) ([]bookingservice.Booking, error)
	UpdateBookingStatus(ctx context.Context, token, id string, status domain.BookingStatus) (*bookingservice.Booking, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	StatusChanged(ctx context.Context, booking domain.Booking) error
}

// Metrics интерфейс счетчиков переходов
type Metrics interface {
	IncTransition(target, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncTransition(string, string) {}

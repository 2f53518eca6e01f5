package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	ListAdminBookings(ctx context.Context, token string) ([]bookingservice.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

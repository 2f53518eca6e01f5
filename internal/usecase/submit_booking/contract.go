package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
)

// Validator интерфейс валидатора черновика
type Validator interface {
	Validate(draft domain.BookingDraft, now time.Time) domain.ValidationErrors
}

// Catalog интерфейс каталога залов
type Catalog interface {
	GetHall(id domain.HallID) (domain.Hall, error)
}

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Load(ctx context.Context, key string) (domain.BookingDraft, error)
	Clear(ctx context.Context, key string) error
}

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	CheckAvailability(ctx context.Context, hallID, date, startTime string) (bool, error)
	CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.Booking, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	BookingSubmitted(ctx context.Context, booking domain.Booking) error
}

// Metrics интерфейс счетчиков отправки
type Metrics interface {
	IncSubmission(outcome string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) IncSubmission(string) {}

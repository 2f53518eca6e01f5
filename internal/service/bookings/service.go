package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-HallBooking/internal/service/bookings/models"
)

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service сервис админского списка бронирований
type Service struct {
	client       BookingServiceClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	client BookingServiceClient,
	location *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		client:       client,
		location:     location,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List получает бронирования администратора, раскладывает их по вкладкам и сортирует.
// Вкладка вычисляется при каждом чтении: бронирование переходит из upcoming в past со сменой даты.
// partition == nil возвращает все бронирования, упорядоченные по вкладкам
func (s *Service) List(ctx context.Context, session domain.AdminSession, partition *domain.Partition) (*models.BookingListResponse, error) {
	if partition != nil {
		s.logger.Info("List: fetching admin bookings, partition=%s", *partition)
	} else {
		s.logger.Info("List: fetching admin bookings")
	}

	if session.IsZero() {
		s.logger.Warn("List: no admin session")
		return nil, ErrUnauthorized
	}

	bookings, err := s.client.ListAdminBookings(ctx, session.Token)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrUnauthorized):
			s.logger.Warn("List: booking service rejected the admin session: %v", err)
			return nil, fmt.Errorf("%w: List - %w", ErrUnauthorized, err)
		case errors.Is(err, bookingservice.ErrTimeout):
			s.logger.Warn("List: booking service timed out: %v", err)
			return nil, fmt.Errorf("%w: List - %w", ErrTimeout, err)
		default:
			s.logger.Error("List: booking service error: %v", err)
			return nil, fmt.Errorf("%w: List - %w", ErrServiceFailure, err)
		}
	}

	today := s.timeProvider.Now()
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
		Counts:   make(map[domain.Partition]int, len(domain.Partitions)),
	}
	for _, p := range domain.Partitions {
		resp.Counts[p] = 0
	}

	for _, b := range bookings {
		booking := b.ToDomain()
		p := domain.PartitionOf(booking.Status, booking.EventDate, today, s.location)
		resp.Counts[p]++

		if partition != nil && p != *partition {
			continue
		}
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(booking, p, s.location))
	}

	sortBookings(resp.Bookings)

	s.logger.Info("List: returning %d of %d bookings", len(resp.Bookings), len(bookings))
	return resp, nil
}

// sortBookings упорядочивает по вкладкам; upcoming по возрастанию даты и времени,
// past и cancelled по убыванию
func sortBookings(list []models.BookingResponse) {
	order := make(map[domain.Partition]int, len(domain.Partitions))
	for i, p := range domain.Partitions {
		order[p] = i
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Partition != b.Partition {
			return order[a.Partition] < order[b.Partition]
		}

		ka, kb := a.EventDate+" "+a.StartTime, b.EventDate+" "+b.StartTime
		if a.Partition == domain.PartitionUpcoming {
			return ka < kb
		}
		return ka > kb
	})
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
)

// maxConcurrentChecks ограничивает параллельные запросы GET /availability
const maxConcurrentChecks = 4

// UseCase use case для получения доступных слотов зала на дату
type UseCase struct {
	catalog      Catalog
	client       BookingServiceClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog Catalog,
	client BookingServiceClient,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		catalog:      catalog,
		client:       client,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: hall=%s, date=%s", req.HallID, req.Date)

	// 1. Проверяем зал
	if _, err := uc.catalog.GetHall(req.HallID); err != nil {
		uc.logger.Warn("GetAvailableSlots: hall %s not found", req.HallID)
		return nil, fmt.Errorf("%w: %s", ErrHallNotFound, req.HallID)
	}

	// 2. Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 3. Оставляем только будущие слоты; для прошедшей даты список пуст
	now := uc.timeProvider.Now()
	slots, err := upcomingSlots(uc.catalog.ListTimeSlots(), date, now, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	resp := &Response{
		HallID: req.HallID,
		Date:   req.Date,
		Slots:  make([]Slot, len(slots)),
	}
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no upcoming slots for hall=%s, date=%s", req.HallID, req.Date)
		return resp, nil
	}

	// 4. Проверяем доступность каждого слота в сервисе бронирований
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, slot := range slots {
		i, slot := i, slot
		g.Go(func() error {
			available, err := uc.client.CheckAvailability(gctx, string(req.HallID), req.Date, slot.String())
			if err != nil {
				return err
			}
			resp.Slots[i] = Slot{StartTime: slot, Available: available}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, bookingservice.ErrTimeout) {
			uc.logger.Warn("GetAvailableSlots: availability check timed out: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		uc.logger.Error("GetAvailableSlots: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}

	uc.logger.Info("GetAvailableSlots: checked %d slots for hall=%s, date=%s", len(resp.Slots), req.HallID, req.Date)
	return resp, nil
}

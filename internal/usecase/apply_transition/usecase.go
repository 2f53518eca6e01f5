package apply_transition

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
)

// UseCase use case для перехода бронирования между статусами (решение администратора)
type UseCase struct {
	client  BookingServiceClient
	events  EventPublisher
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BookingServiceClient,
	events EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		client:  client,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет переход pending -> confirmed или pending -> cancelled
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyTransition: booking id=%s, target=%s", req.BookingID, req.TargetStatus)

	// 1. Без сессии в сеть не идем
	if req.Session.IsZero() {
		uc.logger.Warn("ApplyTransition: no admin session for booking id=%s", req.BookingID)
		uc.metrics.IncTransition(req.TargetStatus.String(), OutcomeUnauthorized)
		return nil, ErrUnauthorized
	}

	// 2. Валидация входных данных
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if _, err := domain.ParseBookingStatus(req.TargetStatus.String()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Текущее состояние бронирования
	current, err := uc.findBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем переход по таблице допустимых переходов
	if !current.CanTransitionTo(req.TargetStatus) {
		if current.Status.IsTerminal() {
			uc.logger.Warn("ApplyTransition: booking id=%s is already %s", req.BookingID, current.Status)
		} else {
			uc.logger.Warn("ApplyTransition: booking id=%s cannot move %s -> %s",
				req.BookingID, current.Status, req.TargetStatus)
		}
		uc.metrics.IncTransition(req.TargetStatus.String(), OutcomeInvalid)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, req.TargetStatus)
	}

	// 5. Обновляем статус в сервисе
	updated, err := uc.client.UpdateBookingStatus(ctx, req.Session.Token, req.BookingID, req.TargetStatus)
	if err != nil {
		return nil, uc.serviceError(req, "update status", err)
	}

	// Источник истины - ответ сервиса; целевой статус подставляется только для пустого тела
	booking := updated.ToDomain()
	if booking.ID == "" {
		booking = current
		booking.Status = ""
	}
	if booking.Status == "" {
		booking.Status = req.TargetStatus
	}
	if booking.Status != req.TargetStatus {
		uc.logger.Warn("ApplyTransition: booking id=%s requested %s but service reports %s",
			booking.ID, req.TargetStatus, booking.Status)
	}

	uc.logger.Info("ApplyTransition: booking id=%s moved %s -> %s", booking.ID, current.Status, booking.Status)
	uc.metrics.IncTransition(req.TargetStatus.String(), OutcomeSuccess)

	// 6. Публикуем событие
	if err := uc.events.StatusChanged(ctx, booking); err != nil {
		uc.logger.Warn("ApplyTransition: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	return &Response{Booking: booking}, nil
}

func (uc *UseCase) findBooking(ctx context.Context, req *Request) (domain.Booking, error) {
	bookings, err := uc.client.ListAdminBookings(ctx, req.Session.Token)
	if err != nil {
		return domain.Booking{}, uc.serviceError(req, "list bookings", err)
	}

	for _, b := range bookings {
		if string(b.ID) == req.BookingID {
			return b.ToDomain(), nil
		}
	}

	uc.logger.Warn("ApplyTransition: booking id=%s not found", req.BookingID)
	uc.metrics.IncTransition(req.TargetStatus.String(), OutcomeNotFound)
	return domain.Booking{}, ErrNotFound
}

func (uc *UseCase) serviceError(req *Request, step string, err error) error {
	target := req.TargetStatus.String()

	switch {
	case errors.Is(err, bookingservice.ErrUnauthorized):
		uc.logger.Warn("ApplyTransition: %s rejected the admin session: %v", step, err)
		uc.metrics.IncTransition(target, OutcomeUnauthorized)
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, step, err)

	case errors.Is(err, bookingservice.ErrNotFound):
		uc.logger.Warn("ApplyTransition: %s: booking id=%s not found", step, req.BookingID)
		uc.metrics.IncTransition(target, OutcomeNotFound)
		return fmt.Errorf("%w: %s: %w", ErrNotFound, step, err)

	case errors.Is(err, bookingservice.ErrConflict):
		uc.logger.Warn("ApplyTransition: %s: service rejected transition for booking id=%s: %v", step, req.BookingID, err)
		uc.metrics.IncTransition(target, OutcomeInvalid)
		return fmt.Errorf("%w: %s: %w", ErrInvalidTransition, step, err)

	case errors.Is(err, bookingservice.ErrTimeout):
		uc.logger.Warn("ApplyTransition: %s timed out: %v", step, err)
		uc.metrics.IncTransition(target, OutcomeFailure)
		return fmt.Errorf("%w: %s: %w", ErrTimeout, step, err)

	default:
		uc.logger.Error("ApplyTransition: %s failed: %v", step, err)
		uc.metrics.IncTransition(target, OutcomeFailure)
		return fmt.Errorf("%w: %s: %w", ErrServiceFailure, step, err)
	}
}

package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// Options настройки конвейера отправки
type Options struct {
	Location          *time.Location // часовой пояс, в котором интерпретируются дата и слоты
	CheckAvailability bool           // проверять слот через GET /availability перед созданием
	PublishTimeout    time.Duration  // ограничение на публикацию события после создания
}

// defaultPublishTimeout используется, если PublishTimeout не задан
const defaultPublishTimeout = 10 * time.Second

// UseCase use case для отправки черновика бронирования
type UseCase struct {
	validator    Validator
	catalog      Catalog
	drafts       DraftStore
	client       BookingServiceClient
	events       EventPublisher
	metrics      Metrics
	options      Options
	timeProvider TimeProvider
	logger       Logger

	// inflight не допускает параллельной отправки одного черновика
	inflight singleflight.Group
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator Validator,
	catalog Catalog,
	draftStore DraftStore,
	client BookingServiceClient,
	events EventPublisher,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	if options.Location == nil {
		options.Location = time.Local
	}
	if options.PublishTimeout <= 0 {
		options.PublishTimeout = defaultPublishTimeout
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		validator:    validator,
		catalog:      catalog,
		drafts:       draftStore,
		client:       client,
		events:       events,
		metrics:      metrics,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки черновика.
// Параллельные вызовы с одним ключом черновика выполняют один сетевой запрос и получают общий результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: draft key=%s", req.DraftKey)

	// 1. Валидация ключа черновика
	if err := drafts.ValidateKey(req.DraftKey); err != nil {
		uc.logger.Warn("SubmitBooking: invalid draft key: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Single-flight по ключу черновика. Отмена запроса первого вызывающего
	// не должна обрывать отправку, которую ждут остальные: время ограничено таймаутом клиента
	result, err, shared := uc.inflight.Do(req.DraftKey, func() (interface{}, error) {
		return uc.submit(context.WithoutCancel(ctx), req)
	})
	if shared {
		uc.logger.Info("SubmitBooking: draft key=%s joined an in-flight submission", req.DraftKey)
	}
	if err != nil {
		return nil, err
	}

	resp := *result.(*Response)
	return &resp, nil
}

func (uc *UseCase) submit(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем черновик
	var draft domain.BookingDraft
	if req.Draft != nil {
		draft = *req.Draft
	} else {
		loaded, err := uc.drafts.Load(ctx, req.DraftKey)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to load draft key=%s: %v", req.DraftKey, err)
			return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
		}
		draft = loaded
	}

	// 2. Повторная валидация: с ошибками в сеть не идем
	now := uc.timeProvider.Now()
	if errs := uc.validator.Validate(draft, now); !errs.IsValid() {
		uc.logger.Warn("SubmitBooking: draft key=%s has %d invalid fields", req.DraftKey, len(errs))
		uc.metrics.IncSubmission(OutcomeInvalid)
		return nil, &InvalidDraftError{Errors: errs}
	}

	// 3. Зал и цена (фиксированная ставка зала)
	hall, err := uc.catalog.GetHall(domain.HallID(draft.HallID))
	if err != nil {
		uc.logger.Error("SubmitBooking: hall %s not found after validation: %v", draft.HallID, err)
		return nil, fmt.Errorf("%w: failed to resolve hall: %v", ErrInternal, err)
	}
	totalPrice := hall.BasePrice

	// 4. Дата и время начала в одну метку RFC 3339 (UTC)
	eventDate, err := uc.eventTimestamp(draft)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to build event timestamp: %v", err)
		return nil, fmt.Errorf("%w: failed to build event timestamp: %v", ErrInternal, err)
	}

	// 5. Проверяем доступность слота
	if uc.options.CheckAvailability {
		available, err := uc.client.CheckAvailability(ctx, draft.HallID, draft.EventDate, draft.StartTime)
		if err != nil {
			return nil, uc.serviceError("check availability", err)
		}
		if !available {
			uc.logger.Warn("SubmitBooking: slot %s %s in %s is not available", draft.EventDate, draft.StartTime, draft.HallID)
			uc.metrics.IncSubmission(OutcomeUnavailable)
			return nil, ErrSlotNotAvailable
		}
	}

	// 6. Создаем бронирование со статусом pending
	created, err := uc.client.CreateBooking(ctx, &bookingservice.CreateBookingRequest{
		HallID:          draft.HallID,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerPhone:   draft.CustomerPhone,
		GuestCount:      draft.GuestCount,
		EventDate:       eventDate,
		StartTime:       draft.StartTime,
		EndTime:         draft.EndTime,
		SpecialRequests: draft.SpecialRequests,
		Status:          domain.StatusPending,
		TotalPrice:      totalPrice,
	})
	if err != nil {
		if errors.Is(err, bookingservice.ErrConflict) {
			uc.logger.Warn("SubmitBooking: booking service rejected slot as taken: %v", err)
			uc.metrics.IncSubmission(OutcomeUnavailable)
			return nil, fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
		}
		return nil, uc.serviceError("create booking", err)
	}

	booking := created.ToDomain()
	if booking.Status == "" {
		booking.Status = domain.StatusPending
	}
	if booking.TotalPrice == 0 {
		booking.TotalPrice = totalPrice
	}
	if booking.HallID == "" {
		booking.HallID = hall.ID
	}

	uc.logger.Info("SubmitBooking: created booking id=%s for draft key=%s", booking.ID, req.DraftKey)
	uc.metrics.IncSubmission(OutcomeSuccess)

	// 7. Очищаем черновик: бронирование уже существует, поэтому ошибка только логируется
	resp := &Response{Booking: booking, DraftCleared: true}
	if err := uc.drafts.Clear(ctx, req.DraftKey); err != nil {
		uc.logger.Error("SubmitBooking: booking id=%s created but draft key=%s not cleared: %v",
			booking.ID, req.DraftKey, err)
		resp.DraftCleared = false
	}

	// 8. Публикуем событие. Бронирование уже создано, поэтому ожидание брокера ограничено
	publishCtx, cancel := context.WithTimeout(ctx, uc.options.PublishTimeout)
	defer cancel()
	if err := uc.events.BookingSubmitted(publishCtx, booking); err != nil {
		uc.logger.Warn("SubmitBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	return resp, nil
}

func (uc *UseCase) eventTimestamp(draft domain.BookingDraft) (string, error) {
	date, err := time.ParseInLocation(domain.DateFormat, draft.EventDate, uc.options.Location)
	if err != nil {
		return "", err
	}
	at, err := types.TimeString(draft.StartTime).On(date, uc.options.Location)
	if err != nil {
		return "", err
	}
	return at.UTC().Format(time.RFC3339), nil
}

func (uc *UseCase) serviceError(step string, err error) error {
	if errors.Is(err, bookingservice.ErrTimeout) {
		uc.logger.Warn("SubmitBooking: %s timed out: %v", step, err)
		uc.metrics.IncSubmission(OutcomeTimeout)
		return fmt.Errorf("%w: %s: %w", ErrTimeout, step, err)
	}
	uc.logger.Error("SubmitBooking: %s failed: %v", step, err)
	uc.metrics.IncSubmission(OutcomeFailure)
	return fmt.Errorf("%w: %s: %w", ErrServiceFailure, step, err)
}

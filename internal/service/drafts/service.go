package drafts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-HallBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts/models"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service хранилище черновиков формы бронирования.
// Значения полей не проверяются при сохранении: ошибки вычисляются валидатором при каждом чтении
type Service struct {
	repo         DraftRepository
	validator    Validator
	timeProvider TimeProvider
	logger       Logger

	locks *keyLocks
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	repo DraftRepository,
	validator Validator,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &Service{
		repo:         repo,
		validator:    validator,
		timeProvider: timeProvider,
		logger:       logger,
		locks:        newKeyLocks(),
	}
}

// ValidateKey проверяет ключ черновика: 1..128 символов [A-Za-z0-9._:-]
func ValidateKey(key string) error {
	if key == "" || len(key) > domain.MaxDraftKeyLength || !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Load возвращает сохраненный черновик или пустой, если по ключу ничего нет
func (s *Service) Load(ctx context.Context, key string) (domain.BookingDraft, error) {
	if err := ValidateKey(key); err != nil {
		return domain.BookingDraft{}, err
	}

	draft, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return domain.BookingDraft{}, nil
		}
		s.logger.Error("Load: repository error for draft key=%s: %v", key, err)
		return domain.BookingDraft{}, fmt.Errorf("%w: Load - repository error: %v", ErrStorage, err)
	}

	return *draft, nil
}

// Update сливает patch с сохраненным черновиком (последняя запись побеждает по каждому полю)
// и сохраняет результат до возврата. Параллельные обновления одного ключа выполняются по очереди
func (s *Service) Update(ctx context.Context, key string, patch domain.DraftPatch) (domain.BookingDraft, error) {
	if err := ValidateKey(key); err != nil {
		return domain.BookingDraft{}, err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	current, err := s.Load(ctx, key)
	if err != nil {
		return domain.BookingDraft{}, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	merged := patch.Apply(current)
	if err := s.repo.Save(ctx, key, merged); err != nil {
		s.logger.Error("Update: repository error for draft key=%s: %v", key, err)
		return domain.BookingDraft{}, fmt.Errorf("%w: Update - repository error: %v", ErrStorage, err)
	}

	return merged, nil
}

// Clear удаляет черновик; повторный вызов не является ошибкой
func (s *Service) Clear(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Error("Clear: repository error for draft key=%s: %v", key, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Clear: draft key=%s cleared", key)
	return nil
}

// Create выдает новый ключ черновика; черновик сохраняется при первом Patch
func (s *Service) Create(ctx context.Context) (*models.DraftResponse, error) {
	key := uuid.NewString()
	s.logger.Info("Create: minted draft key=%s", key)

	var empty domain.BookingDraft
	return models.NewDraftResponse(key, empty, s.validator.Validate(empty, s.timeProvider.Now())), nil
}

// Get возвращает черновик с актуальными ошибками валидации
func (s *Service) Get(ctx context.Context, key string) (*models.DraftResponse, error) {
	draft, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	return models.NewDraftResponse(key, draft, s.validator.Validate(draft, s.timeProvider.Now())), nil
}

// Patch обновляет черновик и возвращает его с ошибками валидации
func (s *Service) Patch(ctx context.Context, key string, patch domain.DraftPatch) (*models.DraftResponse, error) {
	draft, err := s.Update(ctx, key, patch)
	if err != nil {
		return nil, err
	}

	return models.NewDraftResponse(key, draft, s.validator.Validate(draft, s.timeProvider.Now())), nil
}

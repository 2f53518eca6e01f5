package drafts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// DraftRepository интерфейс хранилища черновиков
type DraftRepository interface {
	Get(ctx context.Context, key string) (*domain.BookingDraft, error)
	Save(ctx context.Context, key string, draft domain.BookingDraft) error
	Delete(ctx context.Context, key string) error
}

// Validator интерфейс валидатора черновика
type Validator interface {
	Validate(draft domain.BookingDraft, now time.Time) domain.ValidationErrors
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_draft

import (
	"context"

	"github.com/m04kA/SMC-HallBooking/internal/service/drafts/models"
)

type DraftService interface {
	Get(ctx context.Context, key string) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

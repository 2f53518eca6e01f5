package create_draft

import (
	"context"

	"github.com/m04kA/SMC-HallBooking/internal/service/drafts/models"
)

type DraftService interface {
	Create(ctx context.Context) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

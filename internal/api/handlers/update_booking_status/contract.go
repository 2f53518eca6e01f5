package update_booking_status

import (
	"context"

	applyTransition "github.com/m04kA/SMC-HallBooking/internal/usecase/apply_transition"
)

type ApplyTransitionUseCase interface {
	Execute(ctx context.Context, req *applyTransition.Request) (*applyTransition.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

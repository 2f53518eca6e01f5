package apply_transition

import "github.com/m04kA/SMC-HallBooking/internal/domain"

// Исходы перехода для метрик
const (
	OutcomeSuccess      = "success"
	OutcomeUnauthorized = "unauthorized"
	OutcomeNotFound     = "not_found"
	OutcomeInvalid      = "invalid"
	OutcomeFailure      = "failure"
)

// Request модель запроса на смену статуса
type Request struct {
	BookingID    string
	TargetStatus domain.BookingStatus
	Session      domain.AdminSession
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking domain.Booking
}

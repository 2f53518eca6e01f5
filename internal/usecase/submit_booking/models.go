package submit_booking

import "github.com/m04kA/SMC-HallBooking/internal/domain"

// Исходы отправки для метрик
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
	OutcomeFailure     = "failure"
)

// Request модель запроса на отправку черновика
type Request struct {
	DraftKey string               // ключ черновика в хранилище
	Draft    *domain.BookingDraft // если nil, черновик читается из хранилища
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking      domain.Booking
	DraftCleared bool // false, если черновик не удалось удалить после успешной отправки
}

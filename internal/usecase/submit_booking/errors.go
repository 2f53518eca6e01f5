package submit_booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

var (
	// ErrInvalidDraft возвращается, когда черновик не прошел валидацию (сеть не вызывается)
	ErrInvalidDraft = errors.New("submit_booking: invalid draft")

	// ErrSlotNotAvailable возвращается, когда слот зала уже занят
	ErrSlotNotAvailable = errors.New("submit_booking: time slot is not available")

	// ErrServiceFailure возвращается при сетевой ошибке или ошибке сервиса бронирований.
	// Черновик при этом не изменяется
	ErrServiceFailure = errors.New("submit_booking: booking service failure")

	// ErrTimeout возвращается при истечении таймаута (частный случай ErrServiceFailure)
	ErrTimeout = fmt.Errorf("%w: request timed out", ErrServiceFailure)

	// ErrInvalidInput возвращается при некорректных входных данных (ключ черновика)
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// InvalidDraftError ошибки валидации черновика по полям
type InvalidDraftError struct {
	Errors domain.ValidationErrors
}

func (e *InvalidDraftError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrInvalidDraft, strings.Join(fields, ", "))
}

// Unwrap позволяет проверять errors.Is(err, ErrInvalidDraft)
func (e *InvalidDraftError) Unwrap() error {
	return ErrInvalidDraft
}

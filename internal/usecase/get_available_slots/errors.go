package get_available_slots

import (
	"errors"
	"fmt"
)

var (
	// ErrHallNotFound возвращается, когда зала нет в каталоге
	ErrHallNotFound = errors.New("usecase: hall not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("usecase: invalid date")

	// ErrServiceFailure возвращается при ошибке сервиса бронирований
	ErrServiceFailure = errors.New("usecase: booking service failure")

	// ErrTimeout возвращается при истечении таймаута запроса к сервису
	ErrTimeout = fmt.Errorf("%w: timeout", ErrServiceFailure)
)

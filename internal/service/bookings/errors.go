package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается без сессии или при отказе сервиса в доступе
	ErrUnauthorized = errors.New("service: unauthorized")

	// ErrServiceFailure возвращается при ошибке сервиса бронирований
	ErrServiceFailure = errors.New("service: booking service failure")

	// ErrTimeout возвращается при истечении таймаута запроса к сервису
	ErrTimeout = fmt.Errorf("%w: timeout", ErrServiceFailure)
)

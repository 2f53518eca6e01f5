package apply_transition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается без сессии или при отказе сервиса в доступе
	ErrUnauthorized = errors.New("usecase: unauthorized")

	// ErrNotFound возвращается, когда бронирование не найдено
	ErrNotFound = errors.New("usecase: booking not found")

	// ErrInvalidTransition возвращается, когда машина состояний не допускает переход
	ErrInvalidTransition = errors.New("usecase: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("usecase: invalid input")

	// ErrServiceFailure возвращается при ошибке сервиса бронирований
	ErrServiceFailure = errors.New("usecase: booking service failure")

	// ErrTimeout возвращается при истечении таймаута запроса к сервису
	ErrTimeout = fmt.Errorf("%w: timeout", ErrServiceFailure)
)

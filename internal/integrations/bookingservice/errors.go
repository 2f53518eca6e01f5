package bookingservice

import (
	"errors"
	"fmt"
	"net/http"
)

// TimeoutMessage сообщение для пользователя при истечении таймаута запроса
const TimeoutMessage = "Request timed out. Please try again."

var (
	// ErrServiceFailure возвращается при сетевых ошибках и ответах 5xx/4xx без отдельной семантики
	ErrServiceFailure = errors.New("bookingservice client: service failure")

	// ErrTimeout возвращается при истечении таймаута запроса (частный случай ErrServiceFailure)
	ErrTimeout = fmt.Errorf("%w: request timed out", ErrServiceFailure)

	// ErrUnauthorized возвращается на 401/403
	ErrUnauthorized = errors.New("bookingservice client: unauthorized")

	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("bookingservice client: not found")

	// ErrConflict возвращается на 409
	ErrConflict = errors.New("bookingservice client: conflict")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrServiceFailure)
)

// APIError ответ сервиса с ошибкой вида {"error": "..."}
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", e.Unwrap(), e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", e.Unwrap(), e.StatusCode, e.Message)
}

// Unwrap позволяет сопоставлять APIError с ErrUnauthorized, ErrNotFound и т.д. через errors.Is
func (e *APIError) Unwrap() error {
	return statusKind(e.StatusCode)
}

// statusKind классифицирует неуспешный статус-код ответа
func statusKind(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrServiceFailure
	}
}

// ServerMessage возвращает сообщение сервиса из цепочки ошибок, если оно есть
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

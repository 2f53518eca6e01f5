package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// maxErrorBody ограничение на чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// Paths пути ресурсов сервиса бронирований относительно baseURL
type Paths struct {
	Halls         string
	Bookings      string
	Availability  string
	AdminBookings string
}

// DefaultPaths пути по умолчанию
var DefaultPaths = Paths{
	Halls:         "/halls",
	Bookings:      "/bookings",
	Availability:  "/availability",
	AdminBookings: "/admin/bookings",
}

// Client клиент для работы с внешним сервисом бронирований
type Client struct {
	baseURL    string
	paths      Paths
	timeout    time.Duration
	httpClient *http.Client
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса бронирований.
// timeout ограничивает каждый запрос целиком
func NewClient(baseURL string, paths Paths, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		paths:   paths,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithObserver подключает сбор метрик исходящих запросов
func (c *Client) WithObserver(o Observer) *Client {
	c.observer = o
	return c
}

// ListHalls получает каталог залов
func (c *Client) ListHalls(ctx context.Context) ([]Hall, error) {
	var halls []Hall
	if err := c.do(ctx, "list_halls", http.MethodGet, c.paths.Halls, "", nil, &halls); err != nil {
		return nil, err
	}
	return halls, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, "create_booking", http.MethodPost, c.paths.Bookings, "", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckAvailability проверяет, свободен ли слот зала на дату
func (c *Client) CheckAvailability(ctx context.Context, hallID, date, startTime string) (bool, error) {
	query := url.Values{}
	query.Set("hallId", hallID)
	query.Set("date", date)
	query.Set("time", startTime)

	var resp AvailabilityResponse
	if err := c.do(ctx, "check_availability", http.MethodGet, c.paths.Availability+"?"+query.Encode(), "", nil, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

// ListAdminBookings получает все бронирования (требуется токен администратора)
func (c *Client) ListAdminBookings(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	if err := c.do(ctx, "list_admin_bookings", http.MethodGet, c.paths.AdminBookings, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus меняет статус бронирования (требуется токен администратора)
func (c *Client) UpdateBookingStatus(ctx context.Context, token, id string, status domain.BookingStatus) (*Booking, error) {
	path := fmt.Sprintf("%s/%s/status", c.paths.AdminBookings, url.PathEscape(id))

	var booking Booking
	if err := c.do(ctx, "update_booking_status", http.MethodPut, path, token, &UpdateStatusRequest{Status: status}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) do(ctx context.Context, operation, method, path, token string, body, out interface{}) error {
	started := time.Now()
	status := "error"
	defer func() {
		if c.observer != nil {
			c.observer.ObserveOutbound(operation, status, time.Since(started))
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s - marshal request: %v", ErrServiceFailure, operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %s - create request: %v", ErrServiceFailure, operation, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			status = "timeout"
			c.log.Warn("%s: request to %s timed out after %s", operation, path, c.timeout)
			return fmt.Errorf("%w: %s - %v", ErrTimeout, operation, err)
		}
		c.log.Error("%s: request to %s failed: %v", operation, path, err)
		return fmt.Errorf("%w: %s - execute request: %v", ErrServiceFailure, operation, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if statusKind(resp.StatusCode) == ErrServiceFailure {
			c.log.Error("%s: unexpected status code %d from %s", operation, resp.StatusCode, path)
		}
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(ctx, err) {
			status = "timeout"
			return fmt.Errorf("%w: %s - read response: %v", ErrTimeout, operation, err)
		}
		return fmt.Errorf("%w: %s - decode response: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}

// apiError читает {"error": "..."} из тела ответа
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
	}

	return apiErr
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

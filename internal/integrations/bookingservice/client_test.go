package bookingservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/logger"
)

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveOutbound(operation, status string, _ time.Duration) {
	o.calls = append(o.calls, operation+":"+status)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/", DefaultPaths, timeout, logger.Nop())
}

func TestClient_CreateBooking(t *testing.T) {
	var received CreateBookingRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "hallId": "hall1", "eventDate": "2026-10-18T10:00:00Z",
			"startTime": "10:00", "endTime": "11:00", "customerName": "Jane Doe", "guestCount": 4,
			"status": "pending", "totalPrice": 1000, "createdAt": "2026-10-17T15:30:00Z"}`))
	}, time.Second)

	booking, err := client.CreateBooking(context.Background(), &CreateBookingRequest{
		HallID:     "hall1",
		EventDate:  "2026-10-18T10:00:00Z",
		StartTime:  "10:00",
		EndTime:    "11:00",
		GuestCount: 4,
		Status:     domain.StatusPending,
		TotalPrice: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, received.Status)
	assert.Equal(t, 1000.0, received.TotalPrice)

	assert.Equal(t, ID("42"), booking.ID)
	got := booking.ToDomain()
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, domain.HallSmall, got.HallID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC), got.EventDate.UTC())
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Invalid admin token"}`, wantErr: ErrUnauthorized, wantMsg: "Invalid admin token"},
		{name: "forbidden", status: http.StatusForbidden, body: ``, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"Booking not found"}`, wantErr: ErrNotFound, wantMsg: "Booking not found"},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"Time slot is already booked"}`, wantErr: ErrConflict, wantMsg: "Time slot is already booked"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Failed to create booking"}`, wantErr: ErrServiceFailure, wantMsg: "Failed to create booking"},
		{name: "bad request", status: http.StatusBadRequest, body: `not json`, wantErr: ErrServiceFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, time.Second)

			_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{Status: domain.StatusPending})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrTimeout)
			assert.Equal(t, tt.wantMsg, ServerMessage(err))
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	obs := &recordingObserver{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond).WithObserver(obs)
	defer close(release)

	_, err := client.ListHalls(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, ErrServiceFailure, "timeout is a kind of service failure")
	assert.Equal(t, []string{"list_halls:timeout"}, obs.calls)
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, DefaultPaths, time.Second, logger.Nop())
	_, err := client.ListHalls(context.Background())
	assert.ErrorIs(t, err, ErrServiceFailure)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestClient_ListHalls_FeatureShapes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/halls", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"hall1","name":"Hall 1","capacity":10,"basePrice":1000,"features":["Cozy atmosphere","Modern audio system"]},
			{"id":"hall2","name":"Hall 2","capacity":30,"basePrice":2000,"features":"Spacious layout, Projector setup"}
		]`))
	}, time.Second)

	halls, err := client.ListHalls(context.Background())
	require.NoError(t, err)
	require.Len(t, halls, 2)
	assert.Equal(t, Features{"Cozy atmosphere", "Modern audio system"}, halls[0].Features)
	assert.Equal(t, Features{"Spacious layout", "Projector setup"}, halls[1].Features)
	assert.Equal(t, 30, halls[1].ToDomain().Capacity)
}

func TestClient_CheckAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/availability", r.URL.Path)
		assert.Equal(t, "hall2", r.URL.Query().Get("hallId"))
		assert.Equal(t, "2026-10-18", r.URL.Query().Get("date"))
		assert.Equal(t, "10:00", r.URL.Query().Get("time"))
		_, _ = w.Write([]byte(`{"available": false}`))
	}, time.Second)

	available, err := client.CheckAvailability(context.Background(), "hall2", "2026-10-18", "10:00")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestClient_AdminCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/bookings":
			_, _ = w.Write([]byte(`[{"id":"b-1","hallId":"hall1","eventDate":"2026-10-18T10:00:00Z","status":"pending"}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/admin/bookings/b-1/status":
			var body UpdateStatusRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, domain.StatusConfirmed, body.Status)
			_, _ = w.Write([]byte(`{"id":"b-1","hallId":"hall1","eventDate":"2026-10-18T10:00:00Z","status":"confirmed"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}, time.Second)

	bookings, err := client.ListAdminBookings(context.Background(), "secret")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusPending, bookings[0].Status)

	updated, err := client.UpdateBookingStatus(context.Background(), "secret", "b-1", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
}

func TestClient_RejectsUnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"b-1","hallId":"hall1","eventDate":"2026-10-18T10:00:00Z","status":"approved"}]`))
	}, time.Second)

	_, err := client.ListAdminBookings(context.Background(), "secret")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

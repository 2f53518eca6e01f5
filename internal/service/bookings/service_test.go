package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-HallBooking/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeClient struct {
	bookings []bookingservice.Booking
	err      error
	calls    int
}

func (f *fakeClient) ListAdminBookings(context.Context, string) ([]bookingservice.Booking, error) {
	f.calls++
	return f.bookings, f.err
}

func at(date, start string) time.Time {
	t, err := time.Parse(time.RFC3339, date+"T"+start+":00Z")
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id, date, start string, status domain.BookingStatus) bookingservice.Booking {
	return bookingservice.Booking{
		ID:        bookingservice.ID(id),
		HallID:    "hall1",
		EventDate: at(date, start),
		StartTime: start,
		EndTime:   "20:00",
		Status:    status,
	}
}

func newService(client *fakeClient) *Service {
	now := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
	return NewService(client, time.UTC, fixedTime{t: now}, logger.Nop())
}

func fixtureBookings() []bookingservice.Booking {
	return []bookingservice.Booking{
		booking("u2", "2026-10-20", "09:00", domain.StatusPending),
		booking("p1", "2026-10-10", "12:00", domain.StatusConfirmed),
		booking("u1", "2026-10-17", "10:00", domain.StatusConfirmed), // сегодня, время уже прошло
		booking("c1", "2026-10-25", "09:00", domain.StatusCancelled),
		booking("u3", "2026-10-20", "08:00", domain.StatusPending),
		booking("p2", "2026-10-16", "09:00", domain.StatusPending),
		booking("c2", "2026-09-01", "09:00", domain.StatusCancelled),
	}
}

func TestList_Partitions(t *testing.T) {
	client := &fakeClient{bookings: fixtureBookings()}
	svc := newService(client)

	tests := []struct {
		partition domain.Partition
		want      []string
	}{
		{partition: domain.PartitionUpcoming, want: []string{"u1", "u3", "u2"}},
		{partition: domain.PartitionPast, want: []string{"p2", "p1"}},
		{partition: domain.PartitionCancelled, want: []string{"c1", "c2"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.partition), func(t *testing.T) {
			p := tt.partition
			resp, err := svc.List(context.Background(), domain.NewAdminSession("secret"), &p)
			require.NoError(t, err)

			var got []string
			for _, b := range resp.Bookings {
				got = append(got, b.ID)
				assert.Equal(t, tt.partition, b.Partition)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, map[domain.Partition]int{
				domain.PartitionUpcoming:  3,
				domain.PartitionPast:      2,
				domain.PartitionCancelled: 2,
			}, resp.Counts)
		})
	}
}

func TestList_AllOrderedByPartition(t *testing.T) {
	svc := newService(&fakeClient{bookings: fixtureBookings()})

	resp, err := svc.List(context.Background(), domain.NewAdminSession("secret"), nil)
	require.NoError(t, err)

	var got []string
	for _, b := range resp.Bookings {
		got = append(got, b.ID)
	}
	assert.Equal(t, []string{"u1", "u3", "u2", "p2", "p1", "c1", "c2"}, got)
	assert.Equal(t, "2026-10-17", resp.Bookings[0].EventDate)
}

func TestList_EveryBookingInExactlyOnePartition(t *testing.T) {
	svc := newService(&fakeClient{bookings: fixtureBookings()})

	seen := map[string]int{}
	for _, p := range domain.Partitions {
		p := p
		resp, err := svc.List(context.Background(), domain.NewAdminSession("secret"), &p)
		require.NoError(t, err)
		for _, b := range resp.Bookings {
			seen[b.ID]++
		}
	}

	assert.Len(t, seen, len(fixtureBookings()))
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestList_Errors(t *testing.T) {
	client := &fakeClient{}
	svc := newService(client)

	_, err := svc.List(context.Background(), domain.AdminSession{}, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, client.calls)

	client.err = &bookingservice.APIError{StatusCode: 401, Message: "Invalid admin token"}
	_, err = svc.List(context.Background(), domain.NewAdminSession("wrong"), nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid admin token", bookingservice.ServerMessage(err))

	client.err = bookingservice.ErrTimeout
	_, err = svc.List(context.Background(), domain.NewAdminSession("secret"), nil)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, ErrServiceFailure)

	client.err = &bookingservice.APIError{StatusCode: 500}
	_, err = svc.List(context.Background(), domain.NewAdminSession("secret"), nil)
	assert.ErrorIs(t, err, ErrServiceFailure)
	assert.NotErrorIs(t, err, ErrTimeout)
}

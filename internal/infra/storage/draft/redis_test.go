package draft

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

func sampleDraft() domain.BookingDraft {
	return domain.BookingDraft{
		HallID:        "hall1",
		EventDate:     "2026-10-18",
		StartTime:     "10:00",
		CustomerName:  "Jane Doe",
		CustomerPhone: "12345",
		GuestCount:    4,
	}
}

func TestRedisRepository_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", time.Hour)

	payload, err := json.Marshal(sampleDraft())
	require.NoError(t, err)
	mock.ExpectGet("drafts:form-1").SetVal(string(payload))

	got, err := repo.Get(context.Background(), "form-1")
	require.NoError(t, err)
	assert.Equal(t, sampleDraft(), *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Get_NotFound(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", time.Hour)

	mock.ExpectGet("drafts:missing").RedisNil()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Get_Errors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", time.Hour)

	mock.ExpectGet("drafts:down").SetErr(errors.New("connection refused"))
	_, err := repo.Get(context.Background(), "down")
	assert.ErrorIs(t, err, ErrExecQuery)

	mock.ExpectGet("drafts:broken").SetVal("{not json")
	_, err = repo.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrDecode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", 24*time.Hour)

	payload, err := json.Marshal(sampleDraft())
	require.NoError(t, err)
	mock.ExpectSet("drafts:form-1", string(payload), 24*time.Hour).SetVal("OK")

	require.NoError(t, repo.Save(context.Background(), "form-1", sampleDraft()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Save_NoTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", 0)

	payload, err := json.Marshal(domain.BookingDraft{})
	require.NoError(t, err)
	mock.ExpectSet("drafts:empty", string(payload), 0).SetErr(errors.New("READONLY"))

	err = repo.Save(context.Background(), "empty", domain.BookingDraft{})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(client, "drafts:", time.Hour)

	mock.ExpectDel("drafts:form-1").SetVal(1)
	mock.ExpectDel("drafts:form-1").SetVal(0)

	require.NoError(t, repo.Delete(context.Background(), "form-1"))
	require.NoError(t, repo.Delete(context.Background(), "form-1"), "delete must be idempotent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

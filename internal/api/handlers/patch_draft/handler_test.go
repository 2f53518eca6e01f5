package patch_draft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts"
	"github.com/m04kA/SMC-HallBooking/internal/service/drafts/models"
	"github.com/m04kA/SMC-HallBooking/pkg/logger"
)

type fakeService struct {
	patchFn func(key string, patch domain.DraftPatch) (*models.DraftResponse, error)
}

func (f *fakeService) Patch(_ context.Context, key string, patch domain.DraftPatch) (*models.DraftResponse, error) {
	return f.patchFn(key, patch)
}

func do(h *Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/drafts/"+key, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"key": key})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsDraftWithErrors(t *testing.T) {
	svc := &fakeService{patchFn: func(key string, patch domain.DraftPatch) (*models.DraftResponse, error) {
		assert.Equal(t, "form-1", key)
		require.NotNil(t, patch.GuestCount)
		assert.Equal(t, 40, *patch.GuestCount)
		assert.Nil(t, patch.HallID)

		draft := patch.Apply(domain.BookingDraft{HallID: "hall1"})
		return models.NewDraftResponse(key, draft, domain.ValidationErrors{
			"guestCount": "Maximum 10 guests allowed for Hall 1 (Small)",
		}), nil
	}}

	rec := do(NewHandler(svc, logger.Nop()), "form-1", `{"guestCount": 40}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, 40, resp.Draft.GuestCount)
	assert.Equal(t, "hall1", resp.Draft.HallID)
	assert.Contains(t, resp.Errors, "guestCount")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"guestCount":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"hall": "hall1"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid key", body: `{}`, err: drafts.ErrInvalidKey, wantStatus: http.StatusBadRequest},
		{name: "storage", body: `{}`, err: drafts.ErrStorage, wantStatus: http.StatusInternalServerError},
		{name: "other", body: `{}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{patchFn: func(string, domain.DraftPatch) (*models.DraftResponse, error) {
				return nil, tt.err
			}}

			rec := do(NewHandler(svc, logger.Nop()), "form-1", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

package list_time_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/catalog"
)

func TestHandle(t *testing.T) {
	h := NewHandler(catalog.Reference())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-slots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var slots []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 12)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "20:00", slots[11])
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/logger"
)

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer secret":   "secret",
		"bearer  secret ": "secret",
		"Basic abc":       "",
		"secret":          "",
		"":                "",
	}
	for header, want := range tests {
		assert.Equal(t, want, bearerToken(header), header)
	}
}

func TestAdminAuth(t *testing.T) {
	var got domain.AdminSession
	h := AdminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AdminSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, domain.NewAdminSession("secret"), got)

	assert.True(t, AdminSessionFromContext(req.Context()).IsZero())
}

type recordedRequest struct {
	method string
	path   string
	status int
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/drafts/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/drafts/abc", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodGet, path: "/api/v1/drafts/{key}", status: http.StatusTeapot}, m.requests[0])
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestMetricsMiddleware_CountsRecoveredPanic(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Use(Recovery(logger.Nop()))
	r.HandleFunc("/api/v1/drafts/{key}/submit", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/drafts/abc/submit", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{
		method: http.MethodPost,
		path:   "/api/v1/drafts/{key}/submit",
		status: http.StatusInternalServerError,
	}, m.requests[0])
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIKey(t *testing.T) {
	mw := APIKey(config.AuthConfig{Header: "X-Api-Key", APIKey: "secret"}, discardLogger(), "/-/live")(okHandler)

	tests := []struct {
		name    string
		path    string
		key     string
		status  int
		message string
	}{
		{"valid key", "/api/payments", "secret", http.StatusOK, ""},
		{"missing key", "/api/payments", "", http.StatusUnauthorized, domain.MsgAPIKeyMissing},
		{"wrong key", "/api/payments", "secreT", http.StatusUnauthorized, domain.MsgAPIKeyInvalid},
		{"prefix of key", "/api/payments", "sec", http.StatusUnauthorized, domain.MsgAPIKeyInvalid},
		{"exempt path", "/-/live", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set("X-Api-Key", tt.key)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				var body handler.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body.Message)
				assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	Recovery(discardLogger())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/payments", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.MsgInternal, body.Message)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	var ok bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	})

	Timeout(time.Minute)(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestTimeout_CancelsSlowWork(t *testing.T) {
	var err error
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		err = r.Context().Err()
	})

	Timeout(10*time.Millisecond)(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := chimw.RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/payments/x", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/payments/x", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(3), entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

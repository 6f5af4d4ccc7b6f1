package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/pkg/ctxutil"
)

func logRequest(t *testing.T, status int, ctxFn func(*http.Request) *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/riwayat", nil)
	if ctxFn != nil {
		req = ctxFn(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		entry := logRequest(t, tt.status, nil)
		assert.Equal(t, tt.level, entry["level"])
		assert.Equal(t, "http.request", entry["msg"])
		assert.Equal(t, float64(tt.status), entry["status"])
		assert.Equal(t, "POST", entry["method"])
		assert.Equal(t, "/api/riwayat", entry["path"])
		assert.Contains(t, entry, "duration")
		assert.NotContains(t, entry, "user_id")
	}
}

func TestLogger_ContextIdentifiers(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entry := logRequest(t, http.StatusCreated, func(r *http.Request) *http.Request {
		ctx := ctxutil.WithRequestID(r.Context(), "req-42")
		ctx = ctxutil.WithScope(ctx, domain.Scope{UserID: userID, Gardu: "BTG"})
		return r.WithContext(ctx)
	})

	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, "BTG", entry["gardu"])
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sw.WriteHeader(http.StatusConflict)
	sw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, sw.status)
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-signout/internal/logger"
)

// accessLogEntry is the subset of an access log line the tests inspect.
type accessLogEntry struct {
	Level   string `json:"level"`
	URI     string `json:"uri"`
	Method  string `json:"method"`
	Status  int    `json:"status"`
	Size    int    `json:"size"`
	TraceID string `json:"trace_id"`
}

// accessLogs returns the entries of buf that carry a "uri" field.
func accessLogs(t *testing.T, buf *bytes.Buffer) []accessLogEntry {
	t.Helper()

	var entries []accessLogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry accessLogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry.URI != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "checkout created", status: http.StatusCreated, body: `{"item_id":"X1"}`, wantLevel: "info"},
		{name: "sign out", status: http.StatusNoContent, wantLevel: "info"},
		{name: "already checked out", status: http.StatusConflict, body: `{"error":"item is already checked out"}`, wantLevel: "warn"},
		{name: "not the holder", status: http.StatusForbidden, body: "item is held by another user", wantLevel: "warn"},
		{name: "lookup failed", status: http.StatusBadGateway, body: "item lookup failed", wantLevel: "error"},
		{name: "store unavailable", status: http.StatusServiceUnavailable, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/custody/checkout", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			entries := accessLogs(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.status, entries[0].Status)
			assert.Equal(t, len(tt.body), entries[0].Size)
			assert.Equal(t, "/api/custody/checkout", entries[0].URI)
			assert.Equal(t, http.MethodPost, entries[0].Method)
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/custody/active?mine=true", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := accessLogs(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, http.StatusOK, entries[0].Status)
	assert.Equal(t, "/api/custody/active?mine=true", entries[0].URI)
}

func TestWithLogging_ThroughRouter(t *testing.T) {
	var buf bytes.Buffer
	h := newLedgerTestHandler(t, titles(nil))
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/scan", strings.NewReader(`{"code":"U1"}`))
	req.Header.Set(traceIDHeader, "lobby-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/api/custody/active", nil)
	req.Header.Set(traceIDHeader, "lobby-2")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := accessLogs(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "lobby-1", entries[0].TraceID)
	assert.Equal(t, http.StatusOK, entries[0].Status)
	assert.Equal(t, "info", entries[0].Level)

	assert.Equal(t, "lobby-2", entries[1].TraceID)
	assert.Equal(t, http.StatusUnauthorized, entries[1].Status)
	assert.Equal(t, "warn", entries[1].Level)
}

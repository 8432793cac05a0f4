package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-signout/internal/logger"
)

// handlerLoggingTo builds a Handler whose base logger writes JSON to buf.
func handlerLoggingTo(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "terminal trace ID is reused", incoming: "kiosk-lobby-000042", wantReuse: true},
		{name: "UUID from terminal is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantReuse: true},
		{name: "missing header gets a UUID", incoming: ""},
		{name: "ID with spaces is replaced", incoming: "kiosk lobby"},
		{name: "ID with control characters is replaced", incoming: "abc\x01def"},
		{name: "over-long ID is replaced", incoming: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "ID at the length limit is reused", incoming: strings.Repeat("b", maxTraceIDLength), wantReuse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/scan", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected a generated UUID, got %q", got)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := handlerLoggingTo(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("checkout accepted")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/custody/checkout", nil)
	req.Header.Set(traceIDHeader, "trace-77")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-77"`)
	assert.Contains(t, buf.String(), "checkout accepted")
}

func TestWithTraceID_BaseLoggerUnchanged(t *testing.T) {
	var buf bytes.Buffer
	h := handlerLoggingTo(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	buf.Reset()
	h.logger.Info().Msg("after request")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	seen := make(map[string]struct{})
	for range 20 {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
		id := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 20)
}

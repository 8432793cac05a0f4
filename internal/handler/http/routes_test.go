package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-signout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter returns the full router and a bearer header of a live
// session.
func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	h := newLedgerTestHandler(t, titles(nil))

	session := h.services.SessionManager.Establish(models.Identity{UserID: "U1", DisplayName: "Ann"})
	token, err := h.services.AuthService.CreateToken(context.Background(), session)
	require.NoError(t, err)

	return h.Init(), "Bearer " + token.SignedString
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/scan"},
		{http.MethodPost, "/api/auth/pin"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodGet, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Protected routes: 401 without token ----

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/api/auth/signout"},
	{http.MethodGet, "/api/auth/session"},
	{http.MethodPost, "/api/items/scan"},
	{http.MethodPost, "/api/items/register"},
	{http.MethodPost, "/api/custody/checkout"},
	{http.MethodPost, "/api/custody/checkin"},
	{http.MethodGet, "/api/custody/active"},
	{http.MethodGet, "/api/custody/history/X1"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with a live session ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router, bearer := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/session"},
		{http.MethodGet, "/api/custody/active"},
		{http.MethodGet, "/api/custody/history/X1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → 200", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", bearer)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestInit_SignOutInvalidatesToken(t *testing.T) {
	router, bearer := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	req.Header.Set("Authorization", bearer)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", bearer)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, bearer := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool // protected prefixes need a token to reach the 404
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodPost, "/api/custody/unknown", true},
		{http.MethodGet, "/totally/wrong", false},
		{http.MethodPatch, "/api/auth/register", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", bearer)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router, bearer := newTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		addAuth bool // routes behind h.auth need a token to reach MethodNotAllowed
	}{
		{
			name:   "GET on /api/auth/register (POST only)",
			method: http.MethodGet,
			path:   "/api/auth/register",
		},
		{
			name:   "GET on /api/auth/pin (POST only)",
			method: http.MethodGet,
			path:   "/api/auth/pin",
		},
		{
			name:   "POST on /api/version/ (GET only)",
			method: http.MethodPost,
			path:   "/api/version/",
		},
		{
			name:    "DELETE on /api/custody/active (GET only)",
			method:  http.MethodDelete,
			path:    "/api/custody/active",
			addAuth: true,
		},
		{
			name:    "GET on /api/custody/checkout (POST only)",
			method:  http.MethodGet,
			path:    "/api/custody/checkout",
			addAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", bearer)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"wrong method should be answered like an unknown route")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router, _ := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}

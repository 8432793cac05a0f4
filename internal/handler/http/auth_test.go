// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-signout/internal/app"
	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/service"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockCredentialService implements service.CredentialService for unit tests.
// Each method field can be overridden per test case.
type mockCredentialService struct {
	registerFn func(ctx context.Context, userID, displayName, pin string) (models.Identity, error)
	verifyFn   func(ctx context.Context, userID, pin string) (bool, error)
}

func (m *mockCredentialService) Register(ctx context.Context, userID, displayName, pin string) (models.Identity, error) {
	return m.registerFn(ctx, userID, displayName, pin)
}

func (m *mockCredentialService) Verify(ctx context.Context, userID, pin string) (bool, error) {
	return m.verifyFn(ctx, userID, pin)
}

// mockIdentityResolver implements service.IdentityResolver for unit tests.
type mockIdentityResolver struct {
	resolveFn func(ctx context.Context, code string) (service.Resolution[models.Identity], error)
}

func (m *mockIdentityResolver) Resolve(ctx context.Context, code string) (service.Resolution[models.Identity], error) {
	return m.resolveFn(ctx, code)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "handler-test-key",
		TokenIssuer:   "go-signout-test",
		TokenDuration: time.Hour,
		StoreTimeout:  time.Second,
		Version:       "test",
	}
}

// newAuthTestHandler wires the given credential and identity mocks to a real
// session manager and token service.
func newAuthTestHandler(t *testing.T, creds service.CredentialService, ids service.IdentityResolver) *Handler {
	t.Helper()
	cfg := testAppConfig()
	svcs := &service.Services{
		CredentialService: creds,
		IdentityResolver:  ids,
		SessionManager:    service.NewSessionManager(cfg, logger.Nop()),
		AuthService:       service.NewAuthService(cfg, logger.Nop()),
		AppInfoService:    &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func doRequest(h http.HandlerFunc, method, path string, body *strings.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
	}
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

var ann = models.Identity{UserID: "U1", DisplayName: "Ann"}

func knownAnn(_ context.Context, code string) (service.Resolution[models.Identity], error) {
	if code != ann.UserID {
		return service.Resolution[models.Identity]{Code: code}, nil
	}
	return service.Resolution[models.Identity]{Known: true, Value: ann, Code: code}, nil
}

// ─────────────────────────────────────────────
// scanUser
// ─────────────────────────────────────────────

func TestScanUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		resolveFn  func(ctx context.Context, code string) (service.Resolution[models.Identity], error)
		wantStatus int
		wantState  models.ScanState
		wantName   string
	}{
		{
			name:       "known badge asks for PIN",
			body:       `{"code":"U1"}`,
			resolveFn:  knownAnn,
			wantStatus: http.StatusOK,
			wantState:  models.ScanStateAwaitingPIN,
			wantName:   "Ann",
		},
		{
			name:       "unknown badge asks for registration",
			body:       `{"code":"U2"}`,
			resolveFn:  knownAnn,
			wantStatus: http.StatusOK,
			wantState:  models.ScanStateAwaitingRegistration,
		},
		{
			name: "empty code is rejected",
			body: `{"code":"  "}`,
			resolveFn: func(context.Context, string) (service.Resolution[models.Identity], error) {
				return service.Resolution[models.Identity]{}, service.ErrEmptyScanCode
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"code":"U1"}`,
			resolveFn: func(context.Context, string) (service.Resolution[models.Identity], error) {
				return service.Resolution[models.Identity]{}, fmt.Errorf("%w: find identity", service.ErrStoreUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid JSON",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(t, nil, &mockIdentityResolver{resolveFn: tt.resolveFn})

			rec := doRequest(h.scanUser, http.MethodPost, "/api/auth/scan", strings.NewReader(tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp models.UserScanResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.State)
			assert.Equal(t, tt.wantName, resp.DisplayName)
			assert.NotEmpty(t, resp.UserID)
		})
	}
}

// ─────────────────────────────────────────────
// verifyPIN
// ─────────────────────────────────────────────

func TestVerifyPIN(t *testing.T) {
	tests := []struct {
		name       string
		verifyFn   func(ctx context.Context, userID, pin string) (bool, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "correct PIN opens a session",
			verifyFn:   func(context.Context, string, string) (bool, error) { return true, nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong PIN",
			verifyFn:   func(context.Context, string, string) (bool, error) { return false, nil },
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidPIN,
		},
		{
			name: "unknown user",
			verifyFn: func(context.Context, string, string) (bool, error) {
				return false, service.ErrIdentityNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store unavailable",
			verifyFn: func(context.Context, string, string) (bool, error) {
				return false, service.ErrStoreUnavailable
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   app.MsgStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(t,
				&mockCredentialService{verifyFn: tt.verifyFn},
				&mockIdentityResolver{resolveFn: knownAnn},
			)

			body := jsonBody(t, models.PINRequest{UserID: "U1", PIN: "4821"})
			rec := doRequest(h.verifyPIN, http.MethodPost, "/api/auth/pin", body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, rec.Header().Get("Authorization"))
				return
			}

			raw, err := utils.ParseBearerToken(rec.Header().Get("Authorization"))
			require.NoError(t, err)
			token, err := h.services.AuthService.ParseToken(context.Background(), raw)
			require.NoError(t, err)
			assert.Equal(t, "U1", token.UserID)

			session, ok := h.services.SessionManager.Current(token.SessionID)
			require.True(t, ok)
			assert.Equal(t, "Ann", session.Identity.DisplayName)

			var identity models.Identity
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
			assert.Equal(t, ann.UserID, identity.UserID)
		})
	}
}

func TestVerifyPIN_InvalidJSON(t *testing.T) {
	h := newAuthTestHandler(t, &mockCredentialService{}, &mockIdentityResolver{})

	rec := doRequest(h.verifyPIN, http.MethodPost, "/api/auth/pin", strings.NewReader("not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		registerFn func(ctx context.Context, userID, displayName, pin string) (models.Identity, error)
		wantStatus int
	}{
		{
			name: "new identity opens a session",
			registerFn: func(_ context.Context, userID, displayName, _ string) (models.Identity, error) {
				return models.Identity{UserID: userID, DisplayName: displayName}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate identity",
			registerFn: func(context.Context, string, string, string) (models.Identity, error) {
				return models.Identity{}, service.ErrDuplicateIdentity
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "malformed PIN",
			registerFn: func(context.Context, string, string, string) (models.Identity, error) {
				return models.Identity{}, service.ErrInvalidPIN
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty display name",
			registerFn: func(context.Context, string, string, string) (models.Identity, error) {
				return models.Identity{}, service.ErrInvalidDisplayName
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(t, &mockCredentialService{registerFn: tt.registerFn}, &mockIdentityResolver{})

			body := jsonBody(t, models.RegisterRequest{UserID: "U1", DisplayName: "Ann", PIN: "4821"})
			rec := doRequest(h.register, http.MethodPost, "/api/auth/register", body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))
			} else {
				assert.Empty(t, rec.Header().Get("Authorization"))
			}
		})
	}
}

// ─────────────────────────────────────────────
// signOut / currentSession
// ─────────────────────────────────────────────

func TestSignOut_ClearsSession(t *testing.T) {
	h := newAuthTestHandler(t, nil, nil)
	session := h.services.SessionManager.Establish(ann)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	req = injectNopLogger(req)
	req = req.WithContext(utils.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()

	h.signOut(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := h.services.SessionManager.Current(session.SessionID)
	assert.False(t, ok)
}

func TestSignOut_NoSession(t *testing.T) {
	h := newAuthTestHandler(t, nil, nil)

	rec := doRequest(h.signOut, http.MethodPost, "/api/auth/signout", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentSession(t *testing.T) {
	h := newAuthTestHandler(t, nil, nil)
	session := h.services.SessionManager.Establish(ann)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req = injectNopLogger(req)
	req = req.WithContext(utils.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()

	h.currentSession(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, session.SessionID, got.SessionID)
	assert.Equal(t, "Ann", got.Identity.DisplayName)
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the request timeout.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ScanUser implements [ServerAdapter]. POST /api/auth/scan.
func (h *httpServerAdapter) ScanUser(ctx context.Context, code string) (models.UserScanResponse, error) {
	var result models.UserScanResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Code: code}).
		Post("/api/auth/scan")
	if err != nil {
		return result, fmt.Errorf("scan user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode scan user response: %w", err)
	}
	return result, nil
}

// VerifyPIN implements [ServerAdapter]. POST /api/auth/pin.
func (h *httpServerAdapter) VerifyPIN(ctx context.Context, userID, pin string) (models.Identity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PINRequest{UserID: userID, PIN: pin}).
		Post("/api/auth/pin")
	if err != nil {
		return models.Identity{}, fmt.Errorf("verify pin request: %w", err)
	}

	return h.storeSession(resp, "verify pin")
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.Identity{}, fmt.Errorf("register request: %w", err)
	}

	return h.storeSession(resp, "register")
}

func (h *httpServerAdapter) storeSession(resp *resty.Response, op string) (models.Identity, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}

	var identity models.Identity
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	h.SetToken(token)
	return identity, nil
}

// SignOut implements [ServerAdapter]. POST /api/auth/signout. The local
// token is dropped even when the server call fails.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// ScanItem implements [ServerAdapter]. POST /api/items/scan.
func (h *httpServerAdapter) ScanItem(ctx context.Context, code string) (models.ItemScanResponse, error) {
	var result models.ItemScanResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Code: code}).
		Post("/api/items/scan")
	if err != nil {
		return result, fmt.Errorf("scan item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode scan item response: %w", err)
	}
	return result, nil
}

// Checkout implements [ServerAdapter]. POST /api/custody/checkout.
func (h *httpServerAdapter) Checkout(ctx context.Context, code string) (models.CustodyRecord, error) {
	var record models.CustodyRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Code: code}).
		Post("/api/custody/checkout")
	if err != nil {
		return record, fmt.Errorf("checkout request: %w", err)
	}

	if resp.StatusCode() == http.StatusConflict {
		var conflict models.ConflictResponse
		if err = json.Unmarshal(resp.Body(), &conflict); err != nil {
			return record, fmt.Errorf("decode checkout conflict: %w", err)
		}
		return record, &CheckoutConflictError{Record: conflict.Record}
	}
	if err = mapHTTPError(resp); err != nil {
		return record, err
	}

	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return record, fmt.Errorf("decode checkout response: %w", err)
	}
	return record, nil
}

// Checkin implements [ServerAdapter]. POST /api/custody/checkin.
func (h *httpServerAdapter) Checkin(ctx context.Context, code string) (models.CustodyEvent, error) {
	var event models.CustodyEvent

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Code: code}).
		Post("/api/custody/checkin")
	if err != nil {
		return event, fmt.Errorf("checkin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return event, err
	}

	if err = json.Unmarshal(resp.Body(), &event); err != nil {
		return event, fmt.Errorf("decode checkin response: %w", err)
	}
	return event, nil
}

// ListActive implements [ServerAdapter]. GET /api/custody/active.
func (h *httpServerAdapter) ListActive(ctx context.Context, mine bool) ([]models.CustodyRecord, error) {
	req := h.authedRequest(ctx)
	if mine {
		req.SetQueryParam("mine", "true")
	}

	resp, err := req.Get("/api/custody/active")
	if err != nil {
		return nil, fmt.Errorf("list active request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.CustodyRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode list active response: %w", err)
	}
	return records, nil
}

// History implements [ServerAdapter]. GET /api/custody/history/{itemID}.
func (h *httpServerAdapter) History(ctx context.Context, itemID string) ([]models.CustodyEvent, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("itemID", itemID).
		Get("/api/custody/history/{itemID}")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var events []models.CustodyEvent
	if err = json.Unmarshal(resp.Body(), &events); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}
	return events, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

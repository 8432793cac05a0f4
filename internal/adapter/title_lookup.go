package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

type httpTitleLookup struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTitleLookup constructs a [TitleLookup] that calls
// GET {cfg.TitleLookupURL}/scrape/{code}. When no URL is configured the
// returned lookup fails every call with [ErrLookupFailed].
func NewHTTPTitleLookup(cfg config.Adapter, log *logger.Logger) (TitleLookup, error) {
	if strings.TrimSpace(cfg.TitleLookupURL) == "" {
		log.Warn().Str("func", "NewHTTPTitleLookup").Msg("title lookup URL is not configured, item registration is disabled")
		return disabledTitleLookup{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.TitleLookupURL)
	if err != nil {
		return nil, fmt.Errorf("invalid title lookup url: %w", err)
	}

	return &httpTitleLookup{
		client: utils.NewHTTPClient(baseURL, cfg.LookupTimeout),
		logger: log,
	}, nil
}

// LookupTitle implements [TitleLookup].
func (l *httpTitleLookup) LookupTitle(ctx context.Context, code string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("code", code).
		Get("/scrape/{code}")
	if err != nil {
		log.Err(err).Str("func", "*httpTitleLookup.LookupTitle").Str("code", code).Msg("title lookup service unreachable")
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*httpTitleLookup.LookupTitle").Int("status", resp.StatusCode()).Msg("title lookup returned an error status")
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	var titles models.TitlesResponse
	if err = json.Unmarshal(resp.Body(), &titles); err != nil {
		return "", fmt.Errorf("%w: malformed response: %w", ErrLookupFailed, err)
	}
	if len(titles.Titles) == 0 {
		return "", fmt.Errorf("%w: no titles for %q", ErrLookupFailed, code)
	}

	title := strings.TrimSpace(titles.Titles[0])
	if title == "" {
		return "", fmt.Errorf("%w: blank title for %q", ErrLookupFailed, code)
	}

	return title, nil
}

type disabledTitleLookup struct{}

func (disabledTitleLookup) LookupTitle(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", ErrLookupFailed, errors.New("lookup service is not configured"))
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

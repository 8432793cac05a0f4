package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL with a per-request
// timeout. Retries are disabled: callers decide whether a failed call is
// worth repeating.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://scraper.example", 10*time.Second)
//	resp, err := client.R().Get("/scrape/X1")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}

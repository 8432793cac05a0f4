package utils

import (
	"net/url"
	"strings"
)

// codeQueryParams are checked, in order, when a scanned payload is a URL
// that carries the code in its query string.
var codeQueryParams = []string{"id", "code"}

// NormalizeScannedCode turns a raw scanner payload into the key used for
// every store lookup.
//
// Surrounding whitespace is trimmed. When the payload is an absolute http(s)
// URL, the code is taken from the "id" or "code" query parameter if present,
// otherwise from the last non-empty path segment. Any other payload is
// returned trimmed. An empty string means the scan carried no usable code.
//
// Example usage:
//
//	utils.NormalizeScannedCode("  https://erc.example/items/X1 \n") // "X1"
func NormalizeScannedCode(raw string) string {
	code := strings.TrimSpace(raw)
	if code == "" {
		return ""
	}

	u, err := url.Parse(code)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return code
	}

	query := u.Query()
	for _, param := range codeQueryParams {
		if v := strings.TrimSpace(query.Get(param)); v != "" {
			return v
		}
	}

	// Split the escaped form so an encoded slash stays inside its segment,
	// then decode each segment exactly once.
	segments := strings.Split(u.EscapedPath(), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			if unescaped, err := url.PathUnescape(s); err == nil {
				return unescaped
			}
			return s
		}
	}

	return ""
}

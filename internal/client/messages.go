package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/kiosk"
	"github.com/MKhiriev/go-signout/models"
)

// humanize turns a workflow error into the line shown on the terminal.
func humanize(err error) string {
	if err == nil {
		return ""
	}

	var conflict *adapter.CheckoutConflictError
	var stateErr *kiosk.StateError

	switch {
	case errors.As(err, &conflict):
		return fmt.Sprintf("%s is already checked out by %s.",
			valueOr(conflict.Record.ItemDisplayName, conflict.Record.ItemID), conflict.Record.HolderDisplayName)
	case errors.Is(err, kiosk.ErrWrongPIN):
		return "Wrong PIN, try again."
	case errors.Is(err, kiosk.ErrSessionExpired):
		return "Your session has expired. Scan your badge again."
	case errors.Is(err, kiosk.ErrEmptyScan):
		return "Nothing was scanned."
	case errors.As(err, &stateErr):
		return "That does not work right now."
	case errors.Is(err, adapter.ErrForbidden):
		return "This item is held by someone else."
	case errors.Is(err, adapter.ErrNotFound):
		return "This item is not checked out."
	case errors.Is(err, adapter.ErrConflict):
		return "This badge is already registered."
	case errors.Is(err, adapter.ErrBadRequest):
		return "Invalid input. The PIN must be 4 digits and the name must not be empty."
	case errors.Is(err, adapter.ErrBadGateway):
		return "Could not find this item. Please scan again."
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "The ledger is unavailable. Please try again."
	}

	if isNetworkError(err) {
		return "No network or the server is unreachable."
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-signout kiosk\n")
	b.WriteString("Version: ")
	b.WriteString(valueOr(info.BuildVersion(), "N/A"))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOr(info.BuildDate(), "N/A"))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOr(info.BuildCommit(), "N/A"))

	return b.String()
}

func valueOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

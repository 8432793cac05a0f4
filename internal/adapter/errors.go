package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signout/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrLookupFailed is wrapped by every [TitleLookup] failure.
var ErrLookupFailed = errors.New("title lookup failed")

// CheckoutConflictError is returned by [ServerAdapter.Checkout] when the
// item already has an active custody record.
type CheckoutConflictError struct {
	Record models.CustodyRecord
}

func (e *CheckoutConflictError) Error() string {
	return fmt.Sprintf("item %s is already checked out by %s", e.Record.ItemID, e.Record.HolderDisplayName)
}

func (e *CheckoutConflictError) Is(target error) bool {
	return target == ErrConflict
}

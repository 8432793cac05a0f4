// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signout/models"
)

var (
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrDuplicateIdentity = errors.New("identity already registered")

	ErrAlreadyCheckedOut = errors.New("item is already checked out")
	ErrNotCheckedOut     = errors.New("item is not checked out")
	ErrNotHolder         = errors.New("item is held by another user")

	ErrLookupFailed     = errors.New("item title lookup failed")
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInvalidPIN         = errors.New("PIN must be exactly 4 digits")
	ErrInvalidDisplayName = errors.New("display name is required")
	ErrEmptyScanCode      = errors.New("scanned code is empty")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// AlreadyCheckedOutError is returned by [CustodyLedger.Checkout] when the item
// already has an active custody record. Record is the record that blocked
// the checkout.
type AlreadyCheckedOutError struct {
	Record models.CustodyRecord
}

func (e *AlreadyCheckedOutError) Error() string {
	return fmt.Sprintf("%s: held by %s since %s",
		ErrAlreadyCheckedOut, e.Record.HolderUserID, e.Record.CheckoutTime.Format("2006-01-02 15:04:05Z07:00"))
}

// Is makes errors.Is(err, ErrAlreadyCheckedOut) hold.
func (e *AlreadyCheckedOutError) Is(target error) bool {
	return target == ErrAlreadyCheckedOut
}

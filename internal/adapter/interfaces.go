// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integrations of go-signout.
//
// [TitleLookup] resolves a scanned item code to a display title through the
// external scraping service. [ServerAdapter] is used by sign-out terminals to
// drive the server API.
//
// HTTP failures are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-signout/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TitleLookup resolves scanned item codes through an external service.
type TitleLookup interface {
	// LookupTitle returns the first title the service reports for code.
	// Every failure (unreachable service, non-2xx status, malformed body,
	// empty or blank title) wraps [ErrLookupFailed].
	LookupTitle(ctx context.Context, code string) (string, error)
}

// ServerAdapter is the terminal-side client of the sign-out server API.
// Implementations keep the bearer token of the current session and attach
// it to every authenticated request.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// ScanUser reports whether a scanned badge belongs to a known identity.
	ScanUser(ctx context.Context, code string) (models.UserScanResponse, error)

	// VerifyPIN opens a session for userID. A wrong PIN returns
	// [ErrUnauthorized]; on success the session token is stored.
	VerifyPIN(ctx context.Context, userID, pin string) (models.Identity, error)

	// Register creates an identity and opens a session for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error)

	// SignOut ends the server session and forgets the token.
	SignOut(ctx context.Context) error

	ScanItem(ctx context.Context, code string) (models.ItemScanResponse, error)

	// Checkout returns a [*CheckoutConflictError] when the item is already
	// checked out.
	Checkout(ctx context.Context, code string) (models.CustodyRecord, error)
	Checkin(ctx context.Context, code string) (models.CustodyEvent, error)
	ListActive(ctx context.Context, mine bool) ([]models.CustodyRecord, error)
	History(ctx context.Context, itemID string) ([]models.CustodyEvent, error)
}

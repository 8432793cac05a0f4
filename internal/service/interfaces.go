// Package service implements the business logic of the sign-out desk:
// salted-PIN credentials, badge and item resolution, the custody ledger that
// guarantees a single holder per item, and in-memory sessions.
//
// Services depend on the repository interfaces of package store and on the
// title lookup of package adapter; they never touch a driver directly.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-signout/models"
)

// CredentialService registers identities and verifies their PINs.
type CredentialService interface {
	// Register stores a new identity with a fresh salt. Returns
	// ErrDuplicateIdentity if userID is already registered.
	Register(ctx context.Context, userID, displayName, pin string) (models.Identity, error)
	// Verify reports whether pin matches the stored hash of userID.
	// A mismatch is (false, nil); an unknown userID is ErrIdentityNotFound.
	Verify(ctx context.Context, userID, pin string) (bool, error)
}

// IdentityResolver maps a scanned badge code to a registered identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, scannedCode string) (Resolution[models.Identity], error)
}

// CatalogResolver maps a scanned item code to its catalog entry, registering
// unknown items through the external title lookup.
type CatalogResolver interface {
	Resolve(ctx context.Context, scannedCode string) (Resolution[models.CatalogItem], error)
	RegisterFromExternalLookup(ctx context.Context, scannedCode string) (models.CatalogItem, error)
	ResolveOrRegister(ctx context.Context, scannedCode string) (models.CatalogItem, error)
}

// CustodyLedger owns the active custody set and its archive.
type CustodyLedger interface {
	// Checkout makes holder the single holder of itemID. Returns an
	// *AlreadyCheckedOutError when the item is already out.
	Checkout(ctx context.Context, itemID, itemDisplayName string, holder models.Identity) (models.CustodyRecord, error)
	// Checkin closes the active record of itemID held by holder.
	Checkin(ctx context.Context, itemID string, holder models.Identity) (models.CustodyEvent, error)
	ListActive(ctx context.Context, holderFilter *string) ([]models.CustodyRecord, error)
	History(ctx context.Context, itemID string) ([]models.CustodyEvent, error)
}

// SessionManager keeps the live sessions of the server.
type SessionManager interface {
	Establish(identity models.Identity) models.Session
	Current(sessionID string) (models.Session, bool)
	// Touch refreshes the idle timer of a live session.
	Touch(sessionID string) (models.Session, bool)
	Clear(sessionID string)
	// Sweep drops every session idle since before now minus the idle
	// timeout and returns how many were dropped.
	Sweep(now time.Time) int
}

// AuthService issues and parses the bearer tokens bound to sessions.
type AuthService interface {
	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// validating.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

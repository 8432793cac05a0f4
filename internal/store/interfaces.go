package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-signout/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IdentityRepository persists registered identities.
type IdentityRepository interface {
	// CreateIdentity inserts identity only if its UserID is free.
	// Returns [ErrIdentityExists] otherwise; the stored row is left untouched.
	CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error)
	// FindIdentity returns [ErrIdentityNotFound] for an unknown userID.
	FindIdentity(ctx context.Context, userID string) (models.Identity, error)
}

// CatalogRepository persists catalog items.
type CatalogRepository interface {
	CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error)
	FindItem(ctx context.Context, itemID string) (models.CatalogItem, error)
}

// CustodyRepository holds the active custody records and the archive of
// closed ones.
type CustodyRepository interface {
	// InsertCustody stores record unless the item already has an active
	// record, in which case [ErrCustodyExists] is returned. Only one of any
	// number of concurrent inserts for the same item succeeds.
	InsertCustody(ctx context.Context, record models.CustodyRecord) error
	// FindCustody returns [ErrCustodyNotFound] when the item is not out.
	FindCustody(ctx context.Context, itemID string) (models.CustodyRecord, error)
	// CloseCustody removes the active record of itemID held by holderUserID
	// and archives it as a [models.CustodyEvent] atomically.
	// Returns [ErrCustodyNotFound] or [ErrHolderMismatch].
	CloseCustody(ctx context.Context, itemID, holderUserID, eventID string, checkinTime time.Time) (models.CustodyEvent, error)
	// ListCustody returns active records ordered by checkout time, newest first.
	ListCustody(ctx context.Context, filter models.ActiveFilter) ([]models.CustodyRecord, error)
	// ListEvents returns archived records of itemID, newest check-in first.
	ListEvents(ctx context.Context, itemID string) ([]models.CustodyEvent, error)
}

// TitleCache keeps titles resolved by the external lookup so that a
// re-scan does not hit the lookup service again.
type TitleCache interface {
	GetTitle(ctx context.Context, code string) (string, bool, error)
	SetTitle(ctx context.Context, code, title string) error
}

// ErrorClassificator maps driver-specific errors to storage semantics.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

package models

// ScanState tells the terminal which prompt to show after a badge scan.
type ScanState string

const (
	// ScanStateAwaitingPIN means the badge belongs to a known identity.
	ScanStateAwaitingPIN ScanState = "awaiting_pin"

	// ScanStateAwaitingRegistration means the badge is unknown and the
	// terminal must collect a display name and PIN.
	ScanStateAwaitingRegistration ScanState = "awaiting_registration"
)

// UserScanResponse is returned by the badge scan endpoint.
type UserScanResponse struct {
	State       ScanState `json:"state"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
}

// ItemScanResponse is returned by the item scan endpoint.
type ItemScanResponse struct {
	Known  bool        `json:"known"`
	ItemID string      `json:"item_id"`
	Item   CatalogItem `json:"item,omitempty"`
}

// ConflictResponse is returned with HTTP 409 when an item is already
// checked out. Record is the active record that blocked the checkout.
type ConflictResponse struct {
	Error  string        `json:"error"`
	Record CustodyRecord `json:"record"`
}

// TitlesResponse is the payload of the external title-lookup service.
type TitlesResponse struct {
	Titles []string `json:"titles"`
}

package models

// ScanRequest carries the raw payload of a barcode or QR scan.
type ScanRequest struct {
	Code string `json:"code"`
}

// PINRequest is sent after a known badge has been scanned.
type PINRequest struct {
	UserID string `json:"user_id"`
	PIN    string `json:"pin"`
}

// RegisterRequest is sent after an unknown badge has been scanned.
type RegisterRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	PIN         string `json:"pin"`
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidDisplayName = errors.New("display name is required")
	ErrInvalidPIN         = errors.New("PIN must be exactly 4 digits")
	ErrEmptyCode          = errors.New("scanned code is empty")
)

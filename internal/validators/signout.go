package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-signout/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the badge code of an identity.
	FieldUserID = "user_id"

	// FieldDisplayName targets the human-readable name of a new identity.
	FieldDisplayName = "display_name"

	// FieldPIN targets the 4-digit PIN.
	FieldPIN = "pin"

	// FieldCode targets the raw payload of a scan.
	FieldCode = "code"
)

// PINLength is the exact number of ASCII digits in a PIN.
const PINLength = 4

// SignoutValidator implements [Validator] for the request models of the
// sign-out API: RegisterRequest, PINRequest and ScanRequest.
type SignoutValidator struct{}

// NewSignoutValidator constructs a new SignoutValidator and returns it as
// the Validator interface.
func NewSignoutValidator() Validator {
	return &SignoutValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each supported model are accepted. Returns [ErrUnsupportedType]
// for anything else.
func (v *SignoutValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.PINRequest:
		return v.validatePINRequest(value, fields...)
	case *models.PINRequest:
		return v.validatePINRequest(*value, fields...)

	case models.ScanRequest:
		return v.validateScanRequest(value, fields...)
	case *models.ScanRequest:
		return v.validateScanRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SignoutValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDisplayName, FieldPIN}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldDisplayName:
			if strings.TrimSpace(req.DisplayName) == "" {
				return ErrInvalidDisplayName
			}
		case FieldPIN:
			if !IsValidPIN(req.PIN) {
				return ErrInvalidPIN
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SignoutValidator) validatePINRequest(req models.PINRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPIN}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldPIN:
			if !IsValidPIN(req.PIN) {
				return ErrInvalidPIN
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SignoutValidator) validateScanRequest(req models.ScanRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(req.Code) == "" {
				return ErrEmptyCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidPIN reports whether pin is exactly [PINLength] ASCII digits.
func IsValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

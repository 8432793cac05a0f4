package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/internal/validators"
	"github.com/MKhiriev/go-signout/models"
)

// CredentialValidationService checks credentials input before passing it on
// to the wrapped CredentialService.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewSignoutValidator(),
	}
}

func (v *CredentialValidationService) Register(ctx context.Context, userID, displayName, pin string) (models.Identity, error) {
	req := models.RegisterRequest{
		UserID:      utils.NormalizeScannedCode(userID),
		DisplayName: displayName,
		PIN:         pin,
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Identity{}, mapValidationError(err)
	}

	return v.inner.Register(ctx, req.UserID, req.DisplayName, req.PIN)
}

func (v *CredentialValidationService) Verify(ctx context.Context, userID, pin string) (bool, error) {
	req := models.PINRequest{
		UserID: utils.NormalizeScannedCode(userID),
		PIN:    pin,
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, mapValidationError(err)
	}

	return v.inner.Verify(ctx, req.UserID, req.PIN)
}

func (v *CredentialValidationService) Wrap(wrapped CredentialService) CredentialService {
	v.inner = wrapped
	return v
}

// mapValidationError converts a validators sentinel into its service
// counterpart while keeping the original in the chain.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidPIN):
		return fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	case errors.Is(err, validators.ErrInvalidDisplayName):
		return fmt.Errorf("%w: %w", ErrInvalidDisplayName, err)
	case errors.Is(err, validators.ErrInvalidUserID), errors.Is(err, validators.ErrEmptyCode):
		return fmt.Errorf("%w: %w", ErrEmptyScanCode, err)
	default:
		return err
	}
}

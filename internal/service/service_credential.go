package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

// credentialService is the concrete implementation of CredentialService.
// PINs are hashed as hex(SHA-256(salt || pin)) with a per-identity random
// salt; the plain PIN is never stored or logged.
type credentialService struct {
	// identityRepository persists identities with a conditional insert.
	identityRepository store.IdentityRepository

	// storeTimeout bounds each repository call.
	storeTimeout time.Duration

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService over the given
// IdentityRepository. Input validation is left to the validation wrapper
// returned by [NewCredentialValidationService].
func NewCredentialService(identityRepository store.IdentityRepository, cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		identityRepository: identityRepository,
		storeTimeout:       cfg.StoreTimeout,
		logger:             logger,
	}
}

// Register generates a fresh salt, hashes pin and inserts the identity only
// if userID is free.
//
// Returns:
//   - ErrDuplicateIdentity if userID is already registered; the stored hash
//     is untouched.
//   - ErrStoreUnavailable on any other store failure.
func (c *credentialService) Register(ctx context.Context, userID, displayName, pin string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	salt, err := utils.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("salt generation failed")
		return models.Identity{}, err
	}

	identity := models.Identity{
		UserID:      userID,
		DisplayName: strings.TrimSpace(displayName),
		Salt:        hex.EncodeToString(salt),
		PINHash:     utils.HashPIN(salt, pin),
		CreatedAt:   time.Now().UTC(),
	}

	storeCtx, cancel := storeContext(ctx, c.storeTimeout)
	defer cancel()

	created, err := c.identityRepository.CreateIdentity(storeCtx, identity)
	if errors.Is(err, store.ErrIdentityExists) {
		log.Info().Str("func", "*credentialService.Register").Str("user_id", userID).Msg("identity already registered")
		return models.Identity{}, fmt.Errorf("%w: %s", ErrDuplicateIdentity, userID)
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Str("user_id", userID).Msg("identity creation ended with error")
		return models.Identity{}, unavailable("create identity", err)
	}

	return created, nil
}

// Verify recomputes the hash of pin with the stored salt and compares it in
// constant time. It never mutates the stored identity.
func (c *credentialService) Verify(ctx context.Context, userID, pin string) (bool, error) {
	log := logger.FromContext(ctx)

	storeCtx, cancel := storeContext(ctx, c.storeTimeout)
	defer cancel()

	identity, err := c.identityRepository.FindIdentity(storeCtx, userID)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return false, fmt.Errorf("%w: %s", ErrIdentityNotFound, userID)
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Verify").Str("user_id", userID).Msg("identity search ended with error")
		return false, unavailable("find identity", err)
	}

	ok, err := utils.VerifyPIN(identity.Salt, pin, identity.PINHash)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Verify").Str("user_id", userID).Msg("stored credential is corrupt")
		return false, err
	}
	if !ok {
		log.Info().Str("func", "*credentialService.Verify").Str("user_id", userID).Msg("PIN mismatch")
	}

	return ok, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

type identityResolver struct {
	identityRepository store.IdentityRepository
	storeTimeout       time.Duration
	logger             *logger.Logger
}

func NewIdentityResolver(identityRepository store.IdentityRepository, cfg config.App, logger *logger.Logger) IdentityResolver {
	return &identityResolver{
		identityRepository: identityRepository,
		storeTimeout:       cfg.StoreTimeout,
		logger:             logger,
	}
}

// Resolve normalises scannedCode and looks it up by exact match.
func (r *identityResolver) Resolve(ctx context.Context, scannedCode string) (Resolution[models.Identity], error) {
	code := utils.NormalizeScannedCode(scannedCode)
	if code == "" {
		return Resolution[models.Identity]{}, ErrEmptyScanCode
	}

	storeCtx, cancel := storeContext(ctx, r.storeTimeout)
	defer cancel()

	identity, err := r.identityRepository.FindIdentity(storeCtx, code)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return unknown[models.Identity](code), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*identityResolver.Resolve").Str("code", code).Msg("identity lookup ended with error")
		return Resolution[models.Identity]{}, unavailable("find identity", err)
	}

	return known(code, identity), nil
}

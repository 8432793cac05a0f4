package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

// catalogResolver resolves item codes against the catalog repository and
// registers unknown items with the title found by the external lookup.
// Titles are cached in the TitleCache so that a code registered on one
// backend is not looked up again by another.
type catalogResolver struct {
	catalogRepository store.CatalogRepository
	titleCache        store.TitleCache
	titleLookup       adapter.TitleLookup

	storeTimeout time.Duration
	logger       *logger.Logger
}

func NewCatalogResolver(catalogRepository store.CatalogRepository, titleCache store.TitleCache, titleLookup adapter.TitleLookup, cfg config.App, logger *logger.Logger) CatalogResolver {
	if titleCache == nil {
		titleCache = store.NopTitleCache{}
	}

	return &catalogResolver{
		catalogRepository: catalogRepository,
		titleCache:        titleCache,
		titleLookup:       titleLookup,
		storeTimeout:      cfg.StoreTimeout,
		logger:            logger,
	}
}

// Resolve looks the normalised code up in the catalog. It never calls the
// external lookup.
func (c *catalogResolver) Resolve(ctx context.Context, scannedCode string) (Resolution[models.CatalogItem], error) {
	code := utils.NormalizeScannedCode(scannedCode)
	if code == "" {
		return Resolution[models.CatalogItem]{}, ErrEmptyScanCode
	}

	item, found, err := c.findItem(ctx, code)
	if err != nil {
		return Resolution[models.CatalogItem]{}, err
	}
	if !found {
		return unknown[models.CatalogItem](code), nil
	}

	return known(code, item), nil
}

// RegisterFromExternalLookup registers the item named by scannedCode using
// the first title returned by the lookup service.
//
// An already registered item is returned as is. Every lookup failure is
// reported as ErrLookupFailed and nothing is persisted. When two callers
// register the same code concurrently, the loser gets the winner's item.
func (c *catalogResolver) RegisterFromExternalLookup(ctx context.Context, scannedCode string) (models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	code := utils.NormalizeScannedCode(scannedCode)
	if code == "" {
		return models.CatalogItem{}, ErrEmptyScanCode
	}

	existing, found, err := c.findItem(ctx, code)
	if err != nil {
		return models.CatalogItem{}, err
	}
	if found {
		return existing, nil
	}

	title, err := c.lookupTitle(ctx, code)
	if err != nil {
		return models.CatalogItem{}, err
	}

	storeCtx, cancel := storeContext(ctx, c.storeTimeout)
	defer cancel()

	item, err := c.catalogRepository.CreateItem(storeCtx, models.CatalogItem{
		ItemID:      code,
		DisplayName: title,
		CreatedAt:   time.Now().UTC(),
	})
	if errors.Is(err, store.ErrItemExists) {
		log.Debug().Str("func", "*catalogResolver.RegisterFromExternalLookup").Str("code", code).Msg("item registered concurrently")
		existing, found, err = c.findItem(ctx, code)
		if err != nil {
			return models.CatalogItem{}, err
		}
		if !found {
			return models.CatalogItem{}, unavailable("create item", store.ErrItemNotFound)
		}
		return existing, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogResolver.RegisterFromExternalLookup").Str("code", code).Msg("item creation ended with error")
		return models.CatalogItem{}, unavailable("create item", err)
	}

	return item, nil
}

// ResolveOrRegister returns the catalog item for scannedCode, registering it
// through the external lookup first when it is unknown.
func (c *catalogResolver) ResolveOrRegister(ctx context.Context, scannedCode string) (models.CatalogItem, error) {
	resolution, err := c.Resolve(ctx, scannedCode)
	if err != nil {
		return models.CatalogItem{}, err
	}
	if resolution.Known {
		return resolution.Value, nil
	}

	return c.RegisterFromExternalLookup(ctx, resolution.Code)
}

func (c *catalogResolver) findItem(ctx context.Context, code string) (models.CatalogItem, bool, error) {
	storeCtx, cancel := storeContext(ctx, c.storeTimeout)
	defer cancel()

	item, err := c.catalogRepository.FindItem(storeCtx, code)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.CatalogItem{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogResolver.findItem").Str("code", code).Msg("item lookup ended with error")
		return models.CatalogItem{}, false, unavailable("find item", err)
	}

	return item, true, nil
}

// lookupTitle consults the title cache before the external lookup and fills
// it afterwards. Cache failures are logged and otherwise ignored.
func (c *catalogResolver) lookupTitle(ctx context.Context, code string) (string, error) {
	log := logger.FromContext(ctx)

	title, ok, err := c.titleCache.GetTitle(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("func", "*catalogResolver.lookupTitle").Msg("title cache read failed")
	}
	if ok && title != "" {
		return title, nil
	}

	title, err = c.titleLookup.LookupTitle(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("func", "*catalogResolver.lookupTitle").Str("code", code).Msg("title lookup failed")
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if err = c.titleCache.SetTitle(ctx, code, title); err != nil {
		log.Warn().Err(err).Str("func", "*catalogResolver.lookupTitle").Msg("title cache write failed")
	}

	return title, nil
}

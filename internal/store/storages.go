package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
)

// Storages bundles every repository the services depend on.
type Storages struct {
	IdentityRepository IdentityRepository
	CatalogRepository  CatalogRepository
	CustodyRepository  CustodyRepository
	TitleCache         TitleCache

	closers []func() error
}

// NewStorages opens the backend named by cfg.Storage.DB.DSN, applies
// migrations to SQL backends and wires the optional Redis title cache.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	if isMemoryDSN(cfg.Storage.DB.DSN) {
		memory := NewMemoryStore()
		storages.IdentityRepository = memory
		storages.CatalogRepository = memory
		storages.CustodyRepository = memory
		log.Info().Str("func", "store.NewStorages").Msg("using in-memory store")
	} else {
		db, err := NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}

		storages.IdentityRepository = NewIdentityRepository(db, log)
		storages.CatalogRepository = NewCatalogRepository(db, log)
		storages.CustodyRepository = NewCustodyRepository(db, log)
		storages.closers = append(storages.closers, db.Close)
	}

	if cfg.Cache.RedisAddress != "" {
		cache, err := NewRedisTitleCache(ctx, cfg.Cache, log)
		if err != nil {
			storages.Close()
			return nil, err
		}
		storages.TitleCache = cache
		storages.closers = append(storages.closers, cache.Close)
	} else {
		storages.TitleCache = NopTitleCache{}
	}

	return storages, nil
}

// Close releases every backend connection opened by [NewStorages].
func (s *Storages) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

func isMemoryDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	return dsn == "" || dsn == "memory" || dsn == "memory://"
}

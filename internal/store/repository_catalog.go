package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	item.CreatedAt = utc(item.CreatedAt)
	query, args, err := buildInsertItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateItem").Msg("failed to build query")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.CatalogItem{}, ErrItemExists
		}
		log.Err(err).Str("func", "*catalogRepository.CreateItem").Str("item_id", item.ItemID).Msg("failed to insert item")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

func (r *catalogRepository) FindItem(ctx context.Context, itemID string) (models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(r.db.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindItem").Msg("failed to build query")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.CatalogItem
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&found.ItemID, &found.DisplayName, &found.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindItem").Str("item_id", itemID).Msg("failed to find item")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

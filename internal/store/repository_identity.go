package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

// identityRepository is the SQL-backed implementation of [IdentityRepository].
// It handles identity registration and lookup against the "identities" table.
type identityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIdentityRepository constructs an [IdentityRepository] backed by db.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		logger: logger,
	}
}

// CreateIdentity inserts a new identity. The primary key on user_id makes the
// insert conditional: a unique violation is reported as [ErrIdentityExists].
func (r *identityRepository) CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)

	identity.CreatedAt = utc(identity.CreatedAt)
	query, args, err := buildInsertIdentityQuery(r.db.builder, identity)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("failed to build query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*identityRepository.CreateIdentity").Str("user_id", identity.UserID).Msg("identity already exists")
			return models.Identity{}, ErrIdentityExists
		}
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("failed to insert identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return identity, nil
}

// FindIdentity looks an identity up by its exact userID.
func (r *identityRepository) FindIdentity(ctx context.Context, userID string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdentityQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindIdentity").Msg("failed to build query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Identity
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&found.UserID, &found.DisplayName, &found.Salt, &found.PINHash, &found.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindIdentity").Str("user_id", userID).Msg("failed to find identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

// custodyRepository is the SQL-backed implementation of [CustodyRepository].
//
// The "active_custody" table is keyed by item_id, which is what makes
// InsertCustody a conditional insert on every dialect. Closed records move
// to "custody_events" in the same transaction that deletes them.
type custodyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustodyRepository constructs a [CustodyRepository] backed by db.
func NewCustodyRepository(db *DB, logger *logger.Logger) CustodyRepository {
	logger.Debug().Msg("creating custody repository")
	return &custodyRepository{
		db:     db,
		logger: logger,
	}
}

// InsertCustody stores record as the active custody record of its item.
// A unique violation on item_id is reported as [ErrCustodyExists].
func (r *custodyRepository) InsertCustody(ctx context.Context, record models.CustodyRecord) error {
	log := logger.FromContext(ctx)

	record.CheckoutTime = utc(record.CheckoutTime)
	query, args, err := buildInsertCustodyQuery(r.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.InsertCustody").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*custodyRepository.InsertCustody").Str("item_id", record.ItemID).Msg("item is already checked out")
			return ErrCustodyExists
		}
		log.Err(err).Str("func", "*custodyRepository.InsertCustody").Str("item_id", record.ItemID).Msg("failed to insert custody record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindCustody returns the active record of itemID.
func (r *custodyRepository) FindCustody(ctx context.Context, itemID string) (models.CustodyRecord, error) {
	var found models.CustodyRecord
	err := r.db.withRetry(ctx, func() error {
		var findErr error
		found, findErr = r.findCustody(ctx, r.db, itemID)
		return findErr
	})

	return found, err
}

func (r *custodyRepository) findCustody(ctx context.Context, q DBTX, itemID string) (models.CustodyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustodyQuery(r.db.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.findCustody").Msg("failed to build query")
		return models.CustodyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.CustodyRecord
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&found.ItemID,
		&found.ItemDisplayName,
		&found.HolderUserID,
		&found.HolderDisplayName,
		&found.CheckoutTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CustodyRecord{}, ErrCustodyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.findCustody").Str("item_id", itemID).Msg("failed to scan custody record")
		return models.CustodyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// CloseCustody deletes the active record of itemID held by holderUserID and
// archives it. The delete is conditioned on the holder, so a concurrent
// check-in by the same holder removes the record only once.
func (r *custodyRepository) CloseCustody(ctx context.Context, itemID, holderUserID, eventID string, checkinTime time.Time) (models.CustodyEvent, error) {
	var event models.CustodyEvent

	err := r.db.withRetry(ctx, func() error {
		return r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
			record, err := r.findCustody(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if record.HolderUserID != holderUserID {
				return ErrHolderMismatch
			}

			if err = r.deleteCustody(ctx, tx, itemID, holderUserID); err != nil {
				return err
			}

			event = record.Archive(eventID, holderUserID, utc(checkinTime))
			return r.insertEvent(ctx, tx, event)
		})
	})
	if err != nil {
		return models.CustodyEvent{}, err
	}

	return event, nil
}

func (r *custodyRepository) deleteCustody(ctx context.Context, tx DBTX, itemID, holderUserID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCustodyQuery(r.db.builder, itemID, holderUserID)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.deleteCustody").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.deleteCustody").Str("item_id", itemID).Msg("failed to delete custody record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCustodyNotFound
	}

	return nil
}

func (r *custodyRepository) insertEvent(ctx context.Context, tx DBTX, event models.CustodyEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEventQuery(r.db.builder, event)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.insertEvent").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*custodyRepository.insertEvent").Str("item_id", event.ItemID).Msg("failed to archive custody record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListCustody returns the active set, optionally restricted to one holder.
func (r *custodyRepository) ListCustody(ctx context.Context, filter models.ActiveFilter) ([]models.CustodyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustodyQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.ListCustody").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.CustodyRecord
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		records = make([]models.CustodyRecord, 0, 16)
		for rows.Next() {
			var record models.CustodyRecord
			if scanErr := rows.Scan(
				&record.ItemID,
				&record.ItemDisplayName,
				&record.HolderUserID,
				&record.HolderDisplayName,
				&record.CheckoutTime,
			); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			records = append(records, record)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.ListCustody").Msg("failed to list custody records")
		return nil, err
	}

	return records, nil
}

// ListEvents returns the archived custody records of itemID.
func (r *custodyRepository) ListEvents(ctx context.Context, itemID string) ([]models.CustodyEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEventsQuery(r.db.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.ListEvents").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var events []models.CustodyEvent
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		events = make([]models.CustodyEvent, 0, 16)
		for rows.Next() {
			var event models.CustodyEvent
			if scanErr := rows.Scan(
				&event.EventID,
				&event.ItemID,
				&event.ItemDisplayName,
				&event.HolderUserID,
				&event.HolderDisplayName,
				&event.CheckoutTime,
				&event.CheckinTime,
				&event.CheckedInBy,
			); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			events = append(events, event)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*custodyRepository.ListEvents").Str("item_id", itemID).Msg("failed to list custody events")
		return nil, err
	}

	return events, nil
}

package service

import (
	"context"
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

// checkoutAttempts is the number of conditional inserts tried when the
// conflicting record disappears before it can be read.
const checkoutAttempts = 2

// custodyLedger is the concrete implementation of CustodyLedger.
//
// The single-holder invariant is enforced by the repository's conditional
// insert, never by a read-then-write in this layer.
type custodyLedger struct {
	custodyRepository store.CustodyRepository
	uuidGenerator     *utils.UUIDGenerator

	storeTimeout time.Duration
	now          func() time.Time

	logger *logger.Logger
}

func NewCustodyLedger(custodyRepository store.CustodyRepository, cfg config.App, logger *logger.Logger) CustodyLedger {
	return &custodyLedger{
		custodyRepository: custodyRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		storeTimeout:      cfg.StoreTimeout,
		now:               func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:            logger,
	}
}

// Checkout records holder as the holder of itemID.
//
// Returns an *AlreadyCheckedOutError carrying the blocking record when the
// item is already out. If that record is checked in between the failed
// insert and the read, the insert is tried once more. A blocking record with
// this holder and this checkout time is the attempt's own insert, committed
// before a transient error made the store retry it, and counts as success.
func (l *custodyLedger) Checkout(ctx context.Context, itemID, itemDisplayName string, holder models.Identity) (models.CustodyRecord, error) {
	log := logger.FromContext(ctx)

	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return models.CustodyRecord{}, ErrEmptyScanCode
	}

	for attempt := 1; attempt <= checkoutAttempts; attempt++ {
		record := models.CustodyRecord{
			ItemID:            itemID,
			ItemDisplayName:   itemDisplayName,
			HolderUserID:      holder.UserID,
			HolderDisplayName: holder.DisplayName,
			CheckoutTime:      l.now(),
		}

		err := l.insert(ctx, record)
		if err == nil {
			log.Info().Str("func", "*custodyLedger.Checkout").Str("item_id", itemID).Str("holder", holder.UserID).Msg("item checked out")
			return record, nil
		}
		if !errors.Is(err, store.ErrCustodyExists) {
			log.Err(err).Str("func", "*custodyLedger.Checkout").Str("item_id", itemID).Msg("custody insert ended with error")
			return models.CustodyRecord{}, unavailable("insert custody", err)
		}

		existing, err := l.find(ctx, itemID)
		if errors.Is(err, store.ErrCustodyNotFound) {
			log.Debug().Str("func", "*custodyLedger.Checkout").Str("item_id", itemID).Int("attempt", attempt).Msg("conflicting record vanished")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*custodyLedger.Checkout").Str("item_id", itemID).Msg("custody lookup ended with error")
			return models.CustodyRecord{}, unavailable("find custody", err)
		}

		if isSameCheckout(existing, record) {
			log.Info().Str("func", "*custodyLedger.Checkout").Str("item_id", itemID).Str("holder", holder.UserID).Msg("item checked out by retried insert")
			return existing, nil
		}

		return models.CustodyRecord{}, &AlreadyCheckedOutError{Record: existing}
	}

	return models.CustodyRecord{}, fmt.Errorf("%w: %s is contended", ErrAlreadyCheckedOut, itemID)
}

// Checkin closes the active record of itemID and archives it. Only the
// holder of the record may check the item in.
//
// Returns ErrNotCheckedOut when the item has no active record and
// ErrNotHolder when it is held by someone else.
func (l *custodyLedger) Checkin(ctx context.Context, itemID string, holder models.Identity) (models.CustodyEvent, error) {
	log := logger.FromContext(ctx)

	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return models.CustodyEvent{}, ErrEmptyScanCode
	}

	storeCtx, cancel := storeContext(ctx, l.storeTimeout)
	defer cancel()

	event, err := l.custodyRepository.CloseCustody(storeCtx, itemID, holder.UserID, l.uuidGenerator.Generate(), l.now())
	switch {
	case err == nil:
		log.Info().Str("func", "*custodyLedger.Checkin").Str("item_id", itemID).Str("holder", holder.UserID).Msg("item checked in")
		return event, nil
	case errors.Is(err, store.ErrCustodyNotFound):
		return models.CustodyEvent{}, fmt.Errorf("%w: %s", ErrNotCheckedOut, itemID)
	case errors.Is(err, store.ErrHolderMismatch):
		log.Info().Str("func", "*custodyLedger.Checkin").Str("item_id", itemID).Str("user_id", holder.UserID).Msg("check-in by non-holder rejected")
		return models.CustodyEvent{}, fmt.Errorf("%w: %s", ErrNotHolder, itemID)
	default:
		log.Err(err).Str("func", "*custodyLedger.Checkin").Str("item_id", itemID).Msg("custody close ended with error")
		return models.CustodyEvent{}, unavailable("close custody", err)
	}
}

// ListActive returns the active records, newest checkout first, optionally
// restricted to one holder.
func (l *custodyLedger) ListActive(ctx context.Context, holderFilter *string) ([]models.CustodyRecord, error) {
	storeCtx, cancel := storeContext(ctx, l.storeTimeout)
	defer cancel()

	records, err := l.custodyRepository.ListCustody(storeCtx, models.ActiveFilter{HolderUserID: holderFilter})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*custodyLedger.ListActive").Msg("custody listing ended with error")
		return nil, unavailable("list custody", err)
	}

	return records, nil
}

// History returns the archived check-ins of itemID, newest first.
func (l *custodyLedger) History(ctx context.Context, itemID string) ([]models.CustodyEvent, error) {
	itemID = utils.NormalizeScannedCode(itemID)
	if itemID == "" {
		return nil, ErrEmptyScanCode
	}

	storeCtx, cancel := storeContext(ctx, l.storeTimeout)
	defer cancel()

	events, err := l.custodyRepository.ListEvents(storeCtx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*custodyLedger.History").Str("item_id", itemID).Msg("event listing ended with error")
		return nil, unavailable("list events", err)
	}

	return events, nil
}

func (l *custodyLedger) insert(ctx context.Context, record models.CustodyRecord) error {
	storeCtx, cancel := storeContext(ctx, l.storeTimeout)
	defer cancel()

	return l.custodyRepository.InsertCustody(storeCtx, record)
}

func (l *custodyLedger) find(ctx context.Context, itemID string) (models.CustodyRecord, error) {
	storeCtx, cancel := storeContext(ctx, l.storeTimeout)
	defer cancel()

	return l.custodyRepository.FindCustody(storeCtx, itemID)
}

func isSameCheckout(stored, attempted models.CustodyRecord) bool {
	return stored.HolderUserID == attempted.HolderUserID &&
		stored.CheckoutTime.Equal(attempted.CheckoutTime)
}

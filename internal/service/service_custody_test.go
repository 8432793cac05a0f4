// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/mock"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	ann = models.Identity{UserID: "U1", DisplayName: "Ann"}
	bob = models.Identity{UserID: "U2", DisplayName: "Bob"}
)

// newTestLedger returns a ledger whose clock advances one minute per call.
func newTestLedger(repo store.CustodyRepository) *custodyLedger {
	ledger := NewCustodyLedger(repo, testAppConfig(), logger.Nop()).(*custodyLedger)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var ticks atomic.Int64
	ledger.now = func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * time.Minute)
	}

	return ledger
}

func activeCount(t *testing.T, ledger CustodyLedger) int {
	t.Helper()
	records, err := ledger.ListActive(context.Background(), nil)
	require.NoError(t, err)
	return len(records)
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func TestCustodyLedger_Checkout(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())

	record, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)
	require.NoError(t, err)

	assert.Equal(t, models.CustodyRecord{
		ItemID:            "X1",
		ItemDisplayName:   "Lion Skull",
		HolderUserID:      "U1",
		HolderDisplayName: "Ann",
		CheckoutTime:      record.CheckoutTime,
	}, record)
	assert.False(t, record.CheckoutTime.IsZero())
	assert.Equal(t, 1, activeCount(t, ledger))
}

func TestCustodyLedger_Checkout_AlreadyCheckedOut(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	original, err := ledger.Checkout(ctx, "X1", "Lion Skull", ann)
	require.NoError(t, err)

	_, err = ledger.Checkout(ctx, "X1", "Lion Skull", bob)
	require.ErrorIs(t, err, ErrAlreadyCheckedOut)

	var conflict *AlreadyCheckedOutError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, original, conflict.Record)
	assert.Equal(t, 1, activeCount(t, ledger))
}

func TestCustodyLedger_Checkout_SameHolderTwice(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	_, err := ledger.Checkout(ctx, "X1", "Lion Skull", ann)
	require.NoError(t, err)

	_, err = ledger.Checkout(ctx, "X1", "Lion Skull", ann)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCustodyLedger_Checkout_ConcurrentSingleWinner(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	const attempts = 50
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		successes atomic.Int32
		conflicts atomic.Int32
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			holder := models.Identity{UserID: fmt.Sprintf("U%d", i), DisplayName: "User"}
			_, err := ledger.Checkout(ctx, "X1", "Lion Skull", holder)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrAlreadyCheckedOut):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, successes.Load())
	assert.EqualValues(t, attempts-1, conflicts.Load())
	assert.Equal(t, 1, activeCount(t, ledger))
}

func TestCustodyLedger_Checkout_ConflictVanishedRetriesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	gomock.InOrder(
		repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).Return(store.ErrCustodyExists),
		repo.EXPECT().FindCustody(gomock.Any(), "X1").Return(models.CustodyRecord{}, store.ErrCustodyNotFound),
		repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).Return(nil),
	)

	record, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)
	require.NoError(t, err)
	assert.Equal(t, "U1", record.HolderUserID)
}

func TestCustodyLedger_Checkout_RetriedInsertAlreadyCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	// The store committed the first insert, then the repeated insert after a
	// transient error hit the unique key.
	var committed models.CustodyRecord
	gomock.InOrder(
		repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record models.CustodyRecord) error {
				committed = record
				return store.ErrCustodyExists
			}),
		repo.EXPECT().FindCustody(gomock.Any(), "X1").
			DoAndReturn(func(context.Context, string) (models.CustodyRecord, error) {
				return committed, nil
			}),
	)

	record, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)

	require.NoError(t, err)
	assert.Equal(t, committed, record)
	assert.Equal(t, "U1", record.HolderUserID)
}

func TestCustodyLedger_Checkout_SameHolderEarlierCheckoutConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	earlier := models.CustodyRecord{
		ItemID:            "X1",
		ItemDisplayName:   "Lion Skull",
		HolderUserID:      "U1",
		HolderDisplayName: "Ann",
		CheckoutTime:      time.Date(2026, 2, 27, 15, 30, 0, 0, time.UTC),
	}
	repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).Return(store.ErrCustodyExists)
	repo.EXPECT().FindCustody(gomock.Any(), "X1").Return(earlier, nil)

	_, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)

	var conflict *AlreadyCheckedOutError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, earlier, conflict.Record)
}

func TestCustodyLedger_ClockHasStorePrecision(t *testing.T) {
	ledger := NewCustodyLedger(store.NewMemoryStore(), testAppConfig(), logger.Nop()).(*custodyLedger)

	now := ledger.now()

	assert.Equal(t, now, now.Truncate(time.Microsecond))
	assert.Equal(t, time.UTC, now.Location())
}

func TestCustodyLedger_Checkout_ConflictVanishedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).Return(store.ErrCustodyExists).Times(checkoutAttempts)
	repo.EXPECT().FindCustody(gomock.Any(), "X1").Return(models.CustodyRecord{}, store.ErrCustodyNotFound).Times(checkoutAttempts)

	_, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCustodyLedger_Checkout_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	repo.EXPECT().InsertCustody(gomock.Any(), gomock.Any()).Return(errors.New("connection reset by peer"))

	_, err := ledger.Checkout(context.Background(), "X1", "Lion Skull", ann)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCustodyLedger_Checkout_EmptyItem(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())

	_, err := ledger.Checkout(context.Background(), "  ", "Lion Skull", ann)
	assert.ErrorIs(t, err, ErrEmptyScanCode)
}

// ── Checkin ──────────────────────────────────────────────────────────────────

func TestCustodyLedger_CheckoutCheckinCheckout(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	first, err := ledger.Checkout(ctx, "X1", "Lion Skull", ann)
	require.NoError(t, err)

	event, err := ledger.Checkin(ctx, "X1", ann)
	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, first.CheckoutTime, event.CheckoutTime)
	assert.True(t, event.CheckinTime.After(event.CheckoutTime))
	assert.Equal(t, "U1", event.CheckedInBy)
	assert.Equal(t, 0, activeCount(t, ledger))

	_, err = ledger.Checkout(ctx, "X1", "Lion Skull", bob)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount(t, ledger))
}

func TestCustodyLedger_Checkin_NotCheckedOut(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())

	_, err := ledger.Checkin(context.Background(), "X1", ann)
	assert.ErrorIs(t, err, ErrNotCheckedOut)
}

func TestCustodyLedger_Checkin_NotHolder(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	_, err := ledger.Checkout(ctx, "X1", "Lion Skull", ann)
	require.NoError(t, err)

	_, err = ledger.Checkin(ctx, "X1", bob)
	require.ErrorIs(t, err, ErrNotHolder)
	assert.Equal(t, 1, activeCount(t, ledger))
}

func TestCustodyLedger_Checkin_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodyRepository(ctrl)
	ledger := newTestLedger(repo)

	repo.EXPECT().CloseCustody(gomock.Any(), "X1", "U1", gomock.Any(), gomock.Any()).
		Return(models.CustodyEvent{}, fmt.Errorf("%w: deadlock", store.ErrExecutingStatement))

	_, err := ledger.Checkin(context.Background(), "X1", ann)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

// ── ListActive / History ─────────────────────────────────────────────────────

func TestCustodyLedger_ListActive(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	for _, c := range []struct {
		item   string
		holder models.Identity
	}{{"X1", ann}, {"X2", bob}, {"X3", ann}} {
		_, err := ledger.Checkout(ctx, c.item, "Item "+c.item, c.holder)
		require.NoError(t, err)
	}

	all, err := ledger.ListActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"X3", "X2", "X1"}, []string{all[0].ItemID, all[1].ItemID, all[2].ItemID})

	holder := "U1"
	mine, err := ledger.ListActive(ctx, &holder)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, "U1", r.HolderUserID)
	}
}

func TestCustodyLedger_History(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())
	ctx := context.Background()

	for _, holder := range []models.Identity{ann, bob} {
		_, err := ledger.Checkout(ctx, "X1", "Lion Skull", holder)
		require.NoError(t, err)
		_, err = ledger.Checkin(ctx, "X1", holder)
		require.NoError(t, err)
	}

	events, err := ledger.History(ctx, "X1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "U2", events[0].HolderUserID)
	assert.Equal(t, "U1", events[1].HolderUserID)
}

func TestCustodyLedger_History_EmptyItem(t *testing.T) {
	ledger := newTestLedger(store.NewMemoryStore())

	_, err := ledger.History(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyScanCode)
}

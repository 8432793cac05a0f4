// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-signout/models"
)

// MemoryStore keeps identities, catalog items and custody records in process
// memory. It implements [IdentityRepository], [CatalogRepository] and
// [CustodyRepository] with the same conditional-insert semantics as the SQL
// backends; one mutex guards all collections.
type MemoryStore struct {
	mu         sync.RWMutex
	identities map[string]models.Identity
	items      map[string]models.CatalogItem
	active     map[string]models.CustodyRecord
	events     map[string][]models.CustodyEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		identities: make(map[string]models.Identity),
		items:      make(map[string]models.CatalogItem),
		active:     make(map[string]models.CustodyRecord),
		events:     make(map[string][]models.CustodyEvent),
	}
}

func (m *MemoryStore) CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.identities[identity.UserID]; ok {
		return models.Identity{}, ErrIdentityExists
	}
	identity.CreatedAt = utc(identity.CreatedAt)
	m.identities[identity.UserID] = identity

	return identity, nil
}

func (m *MemoryStore) FindIdentity(ctx context.Context, userID string) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	identity, ok := m.identities[userID]
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}

	return identity, nil
}

func (m *MemoryStore) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CatalogItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ItemID]; ok {
		return models.CatalogItem{}, ErrItemExists
	}
	item.CreatedAt = utc(item.CreatedAt)
	m.items[item.ItemID] = item

	return item, nil
}

func (m *MemoryStore) FindItem(ctx context.Context, itemID string) (models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CatalogItem{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[itemID]
	if !ok {
		return models.CatalogItem{}, ErrItemNotFound
	}

	return item, nil
}

func (m *MemoryStore) InsertCustody(ctx context.Context, record models.CustodyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[record.ItemID]; ok {
		return ErrCustodyExists
	}
	record.CheckoutTime = utc(record.CheckoutTime)
	m.active[record.ItemID] = record

	return nil
}

func (m *MemoryStore) FindCustody(ctx context.Context, itemID string) (models.CustodyRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.CustodyRecord{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.active[itemID]
	if !ok {
		return models.CustodyRecord{}, ErrCustodyNotFound
	}

	return record, nil
}

func (m *MemoryStore) CloseCustody(ctx context.Context, itemID, holderUserID, eventID string, checkinTime time.Time) (models.CustodyEvent, error) {
	if err := ctx.Err(); err != nil {
		return models.CustodyEvent{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.active[itemID]
	if !ok {
		return models.CustodyEvent{}, ErrCustodyNotFound
	}
	if record.HolderUserID != holderUserID {
		return models.CustodyEvent{}, ErrHolderMismatch
	}

	delete(m.active, itemID)
	event := record.Archive(eventID, holderUserID, utc(checkinTime))
	m.events[itemID] = append(m.events[itemID], event)

	return event, nil
}

func (m *MemoryStore) ListCustody(ctx context.Context, filter models.ActiveFilter) ([]models.CustodyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	records := make([]models.CustodyRecord, 0, len(m.active))
	for _, record := range m.active {
		if filter.HolderUserID != nil && record.HolderUserID != *filter.HolderUserID {
			continue
		}
		records = append(records, record)
	}
	m.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CheckoutTime.Equal(records[j].CheckoutTime) {
			return records[i].CheckoutTime.After(records[j].CheckoutTime)
		}
		return records[i].ItemID < records[j].ItemID
	})

	return records, nil
}

func (m *MemoryStore) ListEvents(ctx context.Context, itemID string) ([]models.CustodyEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	stored := m.events[itemID]
	events := make([]models.CustodyEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		events = append(events, stored[i])
	}
	m.mu.RUnlock()

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CheckinTime.After(events[j].CheckinTime)
	})

	return events, nil
}

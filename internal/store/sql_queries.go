// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-signout/models"
	"github.com/Masterminds/squirrel"
)

var (
	identityColumns = []string{"user_id", "display_name", "salt", "pin_hash", "created_at"}
	itemColumns     = []string{"item_id", "display_name", "created_at"}
	custodyColumns  = []string{"item_id", "item_display_name", "holder_user_id", "holder_display_name", "checkout_time"}
	eventColumns    = []string{
		"event_id", "item_id", "item_display_name", "holder_user_id", "holder_display_name",
		"checkout_time", "checkin_time", "checked_in_by",
	}
)

func buildInsertIdentityQuery(b squirrel.StatementBuilderType, identity models.Identity) (string, []any, error) {
	return b.Insert(identity.TableName()).
		Columns(identityColumns...).
		Values(identity.UserID, identity.DisplayName, identity.Salt, identity.PINHash, identity.CreatedAt).
		ToSql()
}

func buildSelectIdentityQuery(b squirrel.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(identityColumns...).
		From(models.Identity{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertItemQuery(b squirrel.StatementBuilderType, item models.CatalogItem) (string, []any, error) {
	return b.Insert(item.TableName()).
		Columns(itemColumns...).
		Values(item.ItemID, item.DisplayName, item.CreatedAt).
		ToSql()
}

func buildSelectItemQuery(b squirrel.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Select(itemColumns...).
		From(models.CatalogItem{}.TableName()).
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
}

// buildInsertCustodyQuery relies on the primary key on item_id: a second
// insert for the same item fails with a unique violation.
func buildInsertCustodyQuery(b squirrel.StatementBuilderType, record models.CustodyRecord) (string, []any, error) {
	return b.Insert(record.TableName()).
		Columns(custodyColumns...).
		Values(record.ItemID, record.ItemDisplayName, record.HolderUserID, record.HolderDisplayName, record.CheckoutTime).
		ToSql()
}

func buildSelectCustodyQuery(b squirrel.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Select(custodyColumns...).
		From(models.CustodyRecord{}.TableName()).
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
}

func buildDeleteCustodyQuery(b squirrel.StatementBuilderType, itemID, holderUserID string) (string, []any, error) {
	return b.Delete(models.CustodyRecord{}.TableName()).
		Where(squirrel.Eq{"item_id": itemID, "holder_user_id": holderUserID}).
		ToSql()
}

func buildListCustodyQuery(b squirrel.StatementBuilderType, filter models.ActiveFilter) (string, []any, error) {
	query := b.Select(custodyColumns...).
		From(models.CustodyRecord{}.TableName())

	if filter.HolderUserID != nil {
		query = query.Where(squirrel.Eq{"holder_user_id": *filter.HolderUserID})
	}

	return query.OrderBy("checkout_time DESC", "item_id").ToSql()
}

func buildInsertEventQuery(b squirrel.StatementBuilderType, event models.CustodyEvent) (string, []any, error) {
	return b.Insert(event.TableName()).
		Columns(eventColumns...).
		Values(
			event.EventID,
			event.ItemID,
			event.ItemDisplayName,
			event.HolderUserID,
			event.HolderDisplayName,
			event.CheckoutTime,
			event.CheckinTime,
			event.CheckedInBy,
		).
		ToSql()
}

func buildListEventsQuery(b squirrel.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Select(eventColumns...).
		From(models.CustodyEvent{}.TableName()).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("checkin_time DESC", "event_id DESC").
		ToSql()
}

// utc strips the monotonic clock reading and location so that every backend
// stores and returns the same instant.
func utc(t time.Time) time.Time {
	return t.UTC().Round(0)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CustodyRecord asserts that an item is currently held by a specific identity.
// The active set holds at most one record per ItemID; an item without a
// record is available.
type CustodyRecord struct {
	ItemID            string    `json:"item_id"`
	ItemDisplayName   string    `json:"item_display_name"`
	HolderUserID      string    `json:"holder_user_id"`
	HolderDisplayName string    `json:"holder_display_name"`
	CheckoutTime      time.Time `json:"checkout_time"`
}

// TableName returns the name of the database table
// associated with the CustodyRecord model.
func (c CustodyRecord) TableName() string {
	return "active_custody"
}

// CustodyEvent is an archived custody record, written when an item is
// checked back in.
type CustodyEvent struct {
	// EventID is a UUIDv7 assigned at check-in.
	EventID string `json:"event_id"`

	ItemID            string    `json:"item_id"`
	ItemDisplayName   string    `json:"item_display_name"`
	HolderUserID      string    `json:"holder_user_id"`
	HolderDisplayName string    `json:"holder_display_name"`
	CheckoutTime      time.Time `json:"checkout_time"`
	CheckinTime       time.Time `json:"checkin_time"`

	// CheckedInBy is the user that performed the check-in.
	CheckedInBy string `json:"checked_in_by"`
}

// TableName returns the name of the database table
// associated with the CustodyEvent model.
func (c CustodyEvent) TableName() string {
	return "custody_events"
}

// Archive turns an active record into a history event.
func (c CustodyRecord) Archive(eventID, checkedInBy string, checkinTime time.Time) CustodyEvent {
	return CustodyEvent{
		EventID:           eventID,
		ItemID:            c.ItemID,
		ItemDisplayName:   c.ItemDisplayName,
		HolderUserID:      c.HolderUserID,
		HolderDisplayName: c.HolderDisplayName,
		CheckoutTime:      c.CheckoutTime,
		CheckinTime:       checkinTime,
		CheckedInBy:       checkedInBy,
	}
}

// ActiveFilter narrows a listing of the active set.
type ActiveFilter struct {
	// HolderUserID restricts the listing to one holder when non-nil.
	HolderUserID *string
}

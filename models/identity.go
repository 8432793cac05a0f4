// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is a person known to the sign-out desk. It is created the first
// time an unrecognised badge code is scanned and never changes afterwards.
//
// Salt and PINHash are credential material: they are persisted by the
// store layer but never serialised into API responses.
type Identity struct {
	// UserID is the normalised badge code that identifies the person.
	UserID string `json:"user_id"`

	// DisplayName is the human-readable name shown on custody records.
	DisplayName string `json:"display_name"`

	// Salt is the hex encoding of 16 random bytes generated at registration.
	Salt string `json:"-"`

	// PINHash is hex(SHA-256(salt || pin)).
	PINHash string `json:"-"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-signout server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPIN is returned when the supplied PIN does not match the
	// stored hash of the scanned badge.
	MsgInvalidPIN = "invalid PIN"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSessionExpired is returned when the bearer token is valid but its
	// session has been signed out or has timed out.
	MsgSessionExpired = "session expired, scan your badge again"

	// MsgAlreadyCheckedOut is the error field of the 409 body returned when
	// an item is already held by someone.
	MsgAlreadyCheckedOut = "item is already checked out"

	// MsgNotHolder is returned when an item is checked in by someone other
	// than its holder.
	MsgNotHolder = "item is held by another user"

	// MsgLookupFailed is returned when the external title lookup could not
	// name a scanned item. The operator may retry the scan.
	MsgLookupFailed = "item lookup failed, try again"

	// MsgStoreUnavailable is returned when the backing store did not answer
	// in time.
	MsgStoreUnavailable = "store unavailable"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// called with a method they do not serve.
	MsgRouteNotFound = "route not found"
)

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, scanned-code normalisation,
// PIN hashing, HTTP response writing, HTTP client initialization, and JWT
// token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-signout/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated [models.Session]
// in the request context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the authenticated session from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session bearer token.
//
// The JWT "sub" claim carries the badge code of the authenticated identity
// and the "jti" claim carries the server-side session ID. A token is only
// honoured while its session is still live, so signing out revokes it.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is the parsed "jti" claim.
	SessionID string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

package kiosk

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPIN is returned by EnterPIN on a mismatch. The workflow stays
	// in StateAwaitingPIN.
	ErrWrongPIN = errors.New("wrong PIN")

	// ErrSessionExpired is returned when the server no longer accepts the
	// session token. The workflow is back in StateUnauthenticated.
	ErrSessionExpired = errors.New("session expired")

	ErrEmptyScan = errors.New("empty scan")
)

// StateError reports an event that is not valid in the current state.
type StateError struct {
	Event string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s is not allowed while %s", e.Event, e.State)
}

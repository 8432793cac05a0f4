// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kiosk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

// Receipt is what a terminal shows after an item scan.
type Receipt struct {
	Mode   Mode
	Record models.CustodyRecord
	Event  models.CustodyEvent
}

// Workflow is the state machine of one terminal. It is safe for concurrent
// use, though a terminal normally feeds it from a single scanner loop.
type Workflow struct {
	mu sync.Mutex

	server adapter.ServerAdapter

	state State
	mode  Mode

	// pending is the normalised badge code while awaiting a PIN or a
	// registration; pendingName is the known display name.
	pending     string
	pendingName string
	attempts    int

	identity models.Identity

	logger *logger.Logger
}

func NewWorkflow(server adapter.ServerAdapter, logger *logger.Logger) *Workflow {
	return &Workflow{
		server: server,
		state:  StateUnauthenticated,
		mode:   ModeCheckout,
		logger: logger,
	}
}

// Snapshot is a read-only view of the workflow.
type Snapshot struct {
	State       State
	Mode        Mode
	UserID      string
	DisplayName string
	Attempts    int
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{State: w.state, Mode: w.mode, Attempts: w.attempts}
	switch w.state {
	case StateAwaitingPIN, StateAwaitingRegistration:
		s.UserID = w.pending
		s.DisplayName = w.pendingName
	case StateAuthenticated:
		s.UserID = w.identity.UserID
		s.DisplayName = w.identity.DisplayName
	}
	return s
}

// ScanUser handles a badge scan. It is accepted in every state except
// StateAuthenticated; scanning a new badge while a PIN is pending restarts
// the attempt count.
func (w *Workflow) ScanUser(ctx context.Context, code string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if strings.TrimSpace(code) == "" {
		return w.state, ErrEmptyScan
	}
	if w.state == StateAuthenticated {
		return w.state, &StateError{Event: "badge scan", State: w.state}
	}

	resp, err := w.server.ScanUser(ctx, code)
	if err != nil {
		return w.state, fmt.Errorf("scan user: %w", err)
	}

	w.pending = resp.UserID
	w.pendingName = resp.DisplayName
	w.attempts = 0

	switch resp.State {
	case models.ScanStateAwaitingPIN:
		w.state = StateAwaitingPIN
	case models.ScanStateAwaitingRegistration:
		w.state = StateAwaitingRegistration
	default:
		w.resetLocked()
		return w.state, fmt.Errorf("scan user: unexpected state %q", resp.State)
	}

	w.logger.Debug().Str("user_id", w.pending).Stringer("state", w.state).Msg("badge scanned")
	return w.state, nil
}

// EnterPIN verifies the PIN of the pending badge. A mismatch keeps the
// workflow in StateAwaitingPIN and returns ErrWrongPIN.
func (w *Workflow) EnterPIN(ctx context.Context, pin string) (models.Identity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingPIN {
		return models.Identity{}, &StateError{Event: "PIN entry", State: w.state}
	}

	identity, err := w.server.VerifyPIN(ctx, w.pending, pin)
	if errors.Is(err, adapter.ErrUnauthorized) {
		w.attempts++
		w.logger.Info().Str("user_id", w.pending).Int("attempts", w.attempts).Msg("wrong PIN")
		return models.Identity{}, ErrWrongPIN
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("verify pin: %w", err)
	}

	w.authenticateLocked(identity)
	return identity, nil
}

// Register creates the pending badge's identity and signs it in.
func (w *Workflow) Register(ctx context.Context, displayName, pin string) (models.Identity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingRegistration {
		return models.Identity{}, &StateError{Event: "registration", State: w.state}
	}

	identity, err := w.server.Register(ctx, models.RegisterRequest{
		UserID:      w.pending,
		DisplayName: displayName,
		PIN:         pin,
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("register: %w", err)
	}

	w.authenticateLocked(identity)
	return identity, nil
}

// SetMode selects checkout or checkin for the following item scans.
func (w *Workflow) SetMode(mode Mode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAuthenticated {
		return &StateError{Event: "mode change", State: w.state}
	}

	w.mode = mode
	return nil
}

// ScanItem checks the scanned item out or in, depending on the mode. A
// rejected session token returns ErrSessionExpired and resets the workflow.
func (w *Workflow) ScanItem(ctx context.Context, code string) (Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if strings.TrimSpace(code) == "" {
		return Receipt{}, ErrEmptyScan
	}
	if w.state != StateAuthenticated {
		return Receipt{}, &StateError{Event: "item scan", State: w.state}
	}

	receipt := Receipt{Mode: w.mode}
	var err error
	if w.mode == ModeCheckin {
		receipt.Event, err = w.server.Checkin(ctx, code)
	} else {
		receipt.Record, err = w.server.Checkout(ctx, code)
	}
	if err != nil {
		return Receipt{}, w.serverErrorLocked(w.mode.String(), err)
	}

	w.logger.Info().Str("code", code).Stringer("mode", w.mode).Str("user_id", w.identity.UserID).Msg("item scanned")
	return receipt, nil
}

// Held lists the items currently held by the signed in user.
func (w *Workflow) Held(ctx context.Context) ([]models.CustodyRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAuthenticated {
		return nil, &StateError{Event: "listing", State: w.state}
	}

	records, err := w.server.ListActive(ctx, true)
	if err != nil {
		return nil, w.serverErrorLocked("list", err)
	}
	return records, nil
}

// History lists the archived check-ins of one item.
func (w *Workflow) History(ctx context.Context, code string) ([]models.CustodyEvent, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyScan
	}
	if w.state != StateAuthenticated {
		return nil, &StateError{Event: "history", State: w.state}
	}

	events, err := w.server.History(ctx, code)
	if err != nil {
		return nil, w.serverErrorLocked("history", err)
	}
	return events, nil
}

// Home signs the user out on the server and returns to
// StateUnauthenticated. The local state is reset even if the server call
// fails.
func (w *Workflow) Home(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.state == StateAuthenticated {
		err = w.server.SignOut(ctx)
		w.logger.Info().Str("user_id", w.identity.UserID).Msg("signed out")
	}

	w.resetLocked()
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (w *Workflow) authenticateLocked(identity models.Identity) {
	w.state = StateAuthenticated
	w.mode = ModeCheckout
	w.identity = identity
	w.pending = ""
	w.pendingName = ""
	w.attempts = 0

	w.logger.Info().Str("user_id", identity.UserID).Msg("signed in")
}

func (w *Workflow) resetLocked() {
	w.state = StateUnauthenticated
	w.mode = ModeCheckout
	w.identity = models.Identity{}
	w.pending = ""
	w.pendingName = ""
	w.attempts = 0
}

func (w *Workflow) serverErrorLocked(op string, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		w.server.SetToken("")
		w.resetLocked()
		return fmt.Errorf("%s: %w", op, ErrSessionExpired)
	}
	return fmt.Errorf("%s: %w", op, err)
}

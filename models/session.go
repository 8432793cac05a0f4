package models

import "time"

// Session holds the authenticated identity for the duration of one scan
// workflow. Sessions live in memory only.
type Session struct {
	SessionID     string    `json:"session_id"`
	Identity      Identity  `json:"identity"`
	EstablishedAt time.Time `json:"established_at"`

	// LastSeenAt is refreshed on every authenticated request and drives the
	// optional inactivity timeout.
	LastSeenAt time.Time `json:"last_seen_at"`
}

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

// sessionManager keeps sessions in a map guarded by an RWMutex. Nothing is
// persisted; a restart signs every terminal out.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	// idleTimeout expires a session not touched for that long. Zero
	// disables expiry.
	idleTimeout time.Duration

	uuidGenerator *utils.UUIDGenerator
	now           func() time.Time

	logger *logger.Logger
}

func NewSessionManager(cfg config.App, logger *logger.Logger) SessionManager {
	return &sessionManager{
		sessions:      make(map[string]models.Session),
		idleTimeout:   cfg.SessionIdleTimeout,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// Establish opens a new session for identity.
func (s *sessionManager) Establish(identity models.Identity) models.Session {
	now := s.now()
	session := models.Session{
		SessionID:     s.uuidGenerator.Generate(),
		Identity:      identity,
		EstablishedAt: now,
		LastSeenAt:    now,
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	s.logger.Info().Str("func", "*sessionManager.Establish").Str("user_id", identity.UserID).Msg("session established")
	return session
}

// Current returns the live session with sessionID. An idle session is
// dropped on access.
func (s *sessionManager) Current(sessionID string) (models.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}
	if s.expired(session, s.now()) {
		s.Clear(sessionID)
		return models.Session{}, false
	}

	return session, true
}

func (s *sessionManager) Touch(sessionID string) (models.Session, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Session{}, false
	}
	if s.expired(session, now) {
		delete(s.sessions, sessionID)
		return models.Session{}, false
	}

	session.LastSeenAt = now
	s.sessions[sessionID] = session
	return session, true
}

// Clear ends the session. Clearing an unknown session is a no-op.
func (s *sessionManager) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *sessionManager) Sweep(now time.Time) int {
	if s.idleTimeout <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			dropped++
		}
	}

	return dropped
}

func (s *sessionManager) expired(session models.Session, now time.Time) bool {
	return s.idleTimeout > 0 && now.Sub(session.LastSeenAt) > s.idleTimeout
}

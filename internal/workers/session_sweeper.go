package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/service"
)

const defaultSweepInterval = time.Minute

// SessionSweeper periodically drops sessions that have been idle for longer
// than the configured timeout.
type SessionSweeper struct {
	sessions service.SessionManager
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions service.SessionManager, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in a goroutine. The loop stops when ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	go s.loop(ctx)
}

func (s *SessionSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Str("func", "*SessionSweeper.loop").Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("func", "*SessionSweeper.loop").Msg("session sweeper stopped")
			return
		case now := <-ticker.C:
			if dropped := s.sessions.Sweep(now.UTC()); dropped > 0 {
				s.logger.Info().Str("func", "*SessionSweeper.loop").Int("dropped", dropped).Msg("idle sessions cleared")
			}
		}
	}
}

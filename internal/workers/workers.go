package workers

import (
	"context"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. The session
// sweeper only runs when an idle timeout is configured.
func NewWorkers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.App.SessionIdleTimeout > 0 {
		w.workers = append(w.workers, NewSessionSweeper(services.SessionManager, cfg.Workers.SessionSweepInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

package workers

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the server's background jobs from services.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewBroadcastWorker(services.BroadcastJob, cfg.BroadcastInterval),
			NewRateLimitSweeper(services.RateLimiter, cfg.RateLimitSweepInterval, logger),
		},
		logger: logger,
	}
}

// Start launches every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	if w.logger != nil {
		w.logger.Info().Int("workers", len(w.workers)).Msg("background workers started")
	}
}

// Stop stops the workers in reverse start order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/service"
)

// broadcastWorker runs a [service.BroadcastJob] at a fixed interval.
type broadcastWorker struct {
	job      service.BroadcastJob
	interval time.Duration
}

func NewBroadcastWorker(job service.BroadcastJob, interval time.Duration) Worker {
	return &broadcastWorker{job: job, interval: interval}
}

func (w *broadcastWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *broadcastWorker) Stop() {
	w.job.Stop()
}

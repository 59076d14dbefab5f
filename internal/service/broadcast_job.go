package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/models"
	"golang.org/x/time/rate"
)

const defaultBroadcastInterval = 2 * time.Second

type broadcastJob struct {
	source FindingSource
	hub    BroadcastHub
	logger *logger.Logger

	// errLog keeps a source that stays down from flooding the log
	errLog rate.Sometimes

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// last and seen belong to the job goroutine
	last int
	seen bool
}

// NewBroadcastJob creates a job that polls source.Count on a ticker and
// pushes [models.PushRefresh] through hub whenever the count changes. The
// job is idle until Start is called.
func NewBroadcastJob(source FindingSource, hub BroadcastHub, logger *logger.Logger) BroadcastJob {
	return &broadcastJob{
		source: source,
		hub:    hub,
		logger: logger,
		errLog: rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// Start implements BroadcastJob. It stops any previously running job, then
// launches a goroutine that polls every interval (2s when interval is not
// positive). The goroutine exits when ctx is cancelled or Stop is called.
func (j *broadcastJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultBroadcastInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.seen = false
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.tick(jobCtx); err != nil {
					j.errLog.Do(func() {
						j.logger.Err(err).Str("func", "*broadcastJob.tick").Msg("error polling finding count")
					})
				}
			}
		}
	}()
}

// Stop implements BroadcastJob. It cancels the goroutine and blocks until it
// has exited. Safe to call when the job is not running.
func (j *broadcastJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// tick polls once. The first observation only records the count.
func (j *broadcastJob) tick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("finding source panicked: %v", r)
		}
	}()

	count, err := j.source.Count(ctx)
	if err != nil {
		return err
	}

	if !j.seen {
		j.seen, j.last = true, count
		return nil
	}
	if count == j.last {
		return nil
	}

	j.logger.Debug().Int("from", j.last).Int("to", count).Msg("finding count changed")
	j.last = count

	report := j.hub.Broadcast(ctx, models.PushRefresh)
	if report.Pruned > 0 {
		j.logger.Debug().Int("sent", report.Sent).Int("pruned", report.Pruned).Msg("refresh broadcast")
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
)

const defaultSweepInterval = 5 * time.Minute

// RateLimitSweeper evicts idle rate-limit windows so the limiter does not
// grow with every address that ever connected.
type RateLimitSweeper struct {
	limiter  service.RateLimiter
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRateLimitSweeper returns a sweeper that calls limiter.Sweep every
// interval (5 minutes when interval is not positive).
func NewRateLimitSweeper(limiter service.RateLimiter, interval time.Duration, logger *logger.Logger) *RateLimitSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &RateLimitSweeper{
		limiter:  limiter,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *RateLimitSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	sweepCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()
}

func (s *RateLimitSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *RateLimitSweeper) sweep() {
	if removed := s.limiter.Sweep(s.now()); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("idle rate-limit windows evicted")
	}
}

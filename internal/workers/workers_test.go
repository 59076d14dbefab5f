// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/mock"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingWorker appends start/stop events to a shared log.
type recordingWorker struct {
	id  string
	mu  *sync.Mutex
	log *[]string
}

func (w *recordingWorker) Start(context.Context) { w.record("start " + w.id) }
func (w *recordingWorker) Stop()                 { w.record("stop " + w.id) }

func (w *recordingWorker) record(event string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	*w.log = append(*w.log, event)
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var (
		mu     sync.Mutex
		events []string
	)
	newWorker := func(id string) Worker { return &recordingWorker{id: id, mu: &mu, log: &events} }

	ws := &Workers{workers: []Worker{newWorker("a"), newWorker("b"), newWorker("c")}, logger: logger.Nop()}
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestNewWorkers_WiresServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockBroadcastJob(ctrl)
	limiter := mock.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Sweep(gomock.Any()).Return(0).AnyTimes()

	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), 3*time.Second),
		job.EXPECT().Stop(),
	)

	ws := NewWorkers(&service.Services{BroadcastJob: job, RateLimiter: limiter}, config.Workers{
		BroadcastInterval:      3 * time.Second,
		RateLimitSweepInterval: time.Hour,
	}, logger.Nop())
	require.Len(t, ws.workers, 2)

	ws.Start(context.Background())
	ws.Stop()
}

func TestBroadcastWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockBroadcastJob(ctrl)

	ctx := context.Background()
	job.EXPECT().Start(ctx, 2*time.Second)
	job.EXPECT().Stop()

	w := NewBroadcastWorker(job, 2*time.Second)
	w.Start(ctx)
	w.Stop()
}

// countingLimiter counts Sweep calls; the other methods are unused.
type countingLimiter struct {
	service.RateLimiter
	sweeps  atomic.Int32
	removed int
}

func (l *countingLimiter) Sweep(time.Time) int {
	l.sweeps.Add(1)
	return l.removed
}

func TestRateLimitSweeper_SweepsOnTicker(t *testing.T) {
	limiter := &countingLimiter{removed: 2}
	s := NewRateLimitSweeper(limiter, 5*time.Millisecond, logger.Nop())

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return limiter.sweeps.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestRateLimitSweeper_StopHaltsSweeping(t *testing.T) {
	limiter := &countingLimiter{}
	s := NewRateLimitSweeper(limiter, 5*time.Millisecond, logger.Nop())

	s.Start(context.Background())
	require.Eventually(t, func() bool { return limiter.sweeps.Load() >= 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := limiter.sweeps.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, limiter.sweeps.Load())
}

func TestRateLimitSweeper_ContextCancel(t *testing.T) {
	limiter := &countingLimiter{}
	s := NewRateLimitSweeper(limiter, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestRateLimitSweeper_Defaults(t *testing.T) {
	s := NewRateLimitSweeper(&countingLimiter{}, 0, logger.Nop())

	assert.Equal(t, defaultSweepInterval, s.interval)
	assert.NotPanics(t, s.Stop, "stop without start")
}

func TestRateLimitSweeper_UsesClock(t *testing.T) {
	limiter := &countingLimiter{}
	s := NewRateLimitSweeper(limiter, time.Hour, logger.Nop())

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	called := false
	s.now = func() time.Time {
		called = true
		return fixed
	}

	s.sweep()
	assert.True(t, called)
	assert.Equal(t, int32(1), limiter.sweeps.Load())
}

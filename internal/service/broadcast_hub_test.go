package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriber records what it was sent.
type fakeSubscriber struct {
	id      string
	sendErr error

	mu       sync.Mutex
	closed   bool
	received []string
}

func newFakeSubscriber(id string) *fakeSubscriber { return &fakeSubscriber{id: id} }

func (s *fakeSubscriber) ID() string { return s.id }

func (s *fakeSubscriber) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *fakeSubscriber) Send(_ context.Context, msg string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, msg)
	return nil
}

func (s *fakeSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSubscriber) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

func TestBroadcastHub_RegisterUnregister(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())
	assert.Equal(t, 0, hub.Len())

	hub.Register(newFakeSubscriber("a"))
	hub.Register(newFakeSubscriber("b"))
	assert.Equal(t, 2, hub.Len())

	hub.Unregister("a")
	hub.Unregister("missing")
	assert.Equal(t, 1, hub.Len())
}

func TestBroadcastHub_Broadcast(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())
	a, b := newFakeSubscriber("a"), newFakeSubscriber("b")
	hub.Register(a)
	hub.Register(b)

	report := hub.Broadcast(context.Background(), "refresh")

	assert.Equal(t, BroadcastReport{Sent: 2}, report)
	assert.Equal(t, []string{"refresh"}, a.messages())
	assert.Equal(t, []string{"refresh"}, b.messages())
}

func TestBroadcastHub_PrunesClosedAndFailing(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())

	live := newFakeSubscriber("live")
	closed := newFakeSubscriber("closed")
	require.NoError(t, closed.Close())
	failing := newFakeSubscriber("failing")
	failing.sendErr = errors.New("broken pipe")

	hub.Register(live)
	hub.Register(closed)
	hub.Register(failing)

	report := hub.Broadcast(context.Background(), "refresh")

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Pruned)
	assert.Equal(t, 1, hub.Len())
	assert.Empty(t, closed.messages())
	assert.True(t, failing.Closed())

	report = hub.Broadcast(context.Background(), "refresh")
	assert.Equal(t, BroadcastReport{Sent: 1}, report)
	assert.Equal(t, []string{"refresh", "refresh"}, live.messages())
}

func TestBroadcastHub_PruneKeepsReplacement(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())

	old := newFakeSubscriber("same")
	require.NoError(t, old.Close())
	hub.Register(old)

	report := hub.Broadcast(context.Background(), "refresh")
	assert.Equal(t, 1, report.Pruned)

	fresh := newFakeSubscriber("same")
	hub.Register(fresh)
	hub.Broadcast(context.Background(), "refresh")
	assert.Equal(t, 1, hub.Len())
	assert.Equal(t, []string{"refresh"}, fresh.messages())
}

func TestBroadcastHub_EmptyBroadcast(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())
	assert.Equal(t, BroadcastReport{}, hub.Broadcast(context.Background(), "refresh"))
}

func TestBroadcastHub_CloseAll(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())
	subs := []*fakeSubscriber{newFakeSubscriber("a"), newFakeSubscriber("b")}
	for _, s := range subs {
		hub.Register(s)
	}

	hub.CloseAll()

	assert.Equal(t, 0, hub.Len())
	for _, s := range subs {
		assert.True(t, s.Closed())
	}
}

func TestBroadcastHub_ConcurrentUse(t *testing.T) {
	hub := NewBroadcastHub(logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("sub-%d", i)
			hub.Register(newFakeSubscriber(id))
			if i%2 == 0 {
				hub.Unregister(id)
			}
		}(i)
		go func() {
			defer wg.Done()
			hub.Broadcast(context.Background(), "refresh")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, hub.Len())
}

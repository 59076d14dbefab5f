package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

// BroadcastReport summarizes one [BroadcastHub.Broadcast] call.
type BroadcastReport struct {
	Sent   int
	Pruned int
}

type broadcastHub struct {
	mu   sync.RWMutex
	subs map[string]Subscriber

	logger *logger.Logger
}

// NewBroadcastHub returns an empty hub.
func NewBroadcastHub(logger *logger.Logger) BroadcastHub {
	return &broadcastHub{subs: make(map[string]Subscriber), logger: logger}
}

func (h *broadcastHub) Register(sub Subscriber) {
	h.mu.Lock()
	h.subs[sub.ID()] = sub
	h.mu.Unlock()
}

func (h *broadcastHub) Unregister(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

func (h *broadcastHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Broadcast sends msg to every live subscriber. Sends run outside the lock on
// a snapshot. Subscribers already closed are pruned before sending, and those
// whose send fails are pruned after.
func (h *broadcastHub) Broadcast(ctx context.Context, msg string) BroadcastReport {
	var report BroadcastReport

	live := make([]Subscriber, 0, h.Len())
	var dead []Subscriber
	for _, sub := range h.snapshot() {
		if sub.Closed() {
			dead = append(dead, sub)
			continue
		}
		live = append(live, sub)
	}

	for _, sub := range live {
		if err := sub.Send(ctx, msg); err != nil {
			h.logger.Debug().Err(err).Str("subscriber", sub.ID()).Msg("push failed, dropping subscriber")
			dead = append(dead, sub)
			continue
		}
		report.Sent++
	}

	if len(dead) > 0 {
		h.mu.Lock()
		for _, sub := range dead {
			// the id may have been re-registered by a new connection
			if h.subs[sub.ID()] == sub {
				delete(h.subs, sub.ID())
				report.Pruned++
			}
		}
		h.mu.Unlock()

		for _, sub := range dead {
			_ = sub.Close()
		}
	}

	return report
}

// CloseAll closes and forgets every subscriber.
func (h *broadcastHub) CloseAll() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]Subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			h.logger.Debug().Err(err).Str("subscriber", sub.ID()).Msg("error closing subscriber")
		}
	}
}

func (h *broadcastHub) snapshot() []Subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		out = append(out, sub)
	}
	return out
}

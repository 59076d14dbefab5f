package service

import (
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
)

const (
	defaultRateCapacity = 100
	defaultRateWindow   = time.Minute
	defaultRateIdleTTL  = time.Hour
)

// rateWindow is the fixed-window state of one identifier. Each window has
// its own lock so a busy identifier never serializes the others.
type rateWindow struct {
	mu        sync.Mutex
	start     time.Time
	remaining int
	lastSeen  time.Time
	dead      bool // evicted by Sweep; callers holding it must reload
}

// fixedWindowLimiter is the [RateLimiter] implementation. The identifier
// map is a sync.Map: entries are inserted concurrently through LoadOrStore
// and evicted by Sweep.
type fixedWindowLimiter struct {
	capacity int
	window   time.Duration
	idleTTL  time.Duration
	now      func() time.Time

	windows sync.Map // string -> *rateWindow
}

// NewRateLimiter constructs a [RateLimiter] from cfg, substituting defaults
// for non-positive values.
func NewRateLimiter(cfg config.RateLimit) RateLimiter {
	return newFixedWindowLimiter(cfg, time.Now)
}

func newFixedWindowLimiter(cfg config.RateLimit, now func() time.Time) *fixedWindowLimiter {
	l := &fixedWindowLimiter{
		capacity: cfg.Capacity,
		window:   cfg.Window,
		idleTTL:  cfg.IdleTTL,
		now:      now,
	}
	if l.capacity <= 0 {
		l.capacity = defaultRateCapacity
	}
	if l.window <= 0 {
		l.window = defaultRateWindow
	}
	if l.idleTTL <= 0 {
		l.idleTTL = defaultRateIdleTTL
	}
	return l
}

func (l *fixedWindowLimiter) Capacity() int {
	return l.capacity
}

// TryConsume charges one request to id. It starts a new window when the
// current one has expired and denies once the window is exhausted.
func (l *fixedWindowLimiter) TryConsume(id string) bool {
	now := l.now()

	w := l.lockLive(id, now)
	defer w.mu.Unlock()

	l.rollLocked(w, now)
	w.lastSeen = now
	if w.remaining <= 0 {
		return false
	}
	w.remaining--
	return true
}

// Remaining returns the requests left in id's current window.
func (l *fixedWindowLimiter) Remaining(id string) int {
	v, ok := l.windows.Load(id)
	if !ok {
		return l.capacity
	}
	w := v.(*rateWindow)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dead || l.expiredLocked(w, l.now()) {
		return l.capacity
	}
	return w.remaining
}

// SecondsUntilReset returns the whole seconds, rounded up, until id's
// window resets. An identifier without a live window reports the full
// window length.
func (l *fixedWindowLimiter) SecondsUntilReset(id string) int {
	full := int(math.Ceil(l.window.Seconds()))

	v, ok := l.windows.Load(id)
	if !ok {
		return full
	}
	w := v.(*rateWindow)

	w.mu.Lock()
	defer w.mu.Unlock()

	left := w.start.Add(l.window).Sub(l.now())
	if w.dead || left <= 0 {
		return full
	}
	return int(math.Ceil(left.Seconds()))
}

// Sweep removes every window whose last use is older than the idle TTL.
// The window is marked dead before it leaves the map, so a TryConsume that
// loaded it earlier charges a fresh window instead.
func (l *fixedWindowLimiter) Sweep(now time.Time) int {
	removed := 0
	l.windows.Range(func(key, value any) bool {
		w := value.(*rateWindow)

		w.mu.Lock()
		if !w.dead && now.Sub(w.lastSeen) > l.idleTTL && l.windows.CompareAndDelete(key, w) {
			w.dead = true
			removed++
		}
		w.mu.Unlock()
		return true
	})
	return removed
}

// lockLive returns id's current window, locked. A window found dead was
// swept after it was loaded; the lookup is repeated until a live one is
// held.
func (l *fixedWindowLimiter) lockLive(id string, now time.Time) *rateWindow {
	for {
		v, _ := l.windows.LoadOrStore(id, &rateWindow{start: now, remaining: l.capacity, lastSeen: now})
		w := v.(*rateWindow)

		w.mu.Lock()
		if !w.dead {
			return w
		}
		w.mu.Unlock()
	}
}

func (l *fixedWindowLimiter) expiredLocked(w *rateWindow, now time.Time) bool {
	return now.Sub(w.start) >= l.window
}

func (l *fixedWindowLimiter) rollLocked(w *rateWindow, now time.Time) {
	if l.expiredLocked(w, now) {
		w.start = now
		w.remaining = l.capacity
	}
}

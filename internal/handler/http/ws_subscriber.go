package http

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/gorilla/websocket"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second

	// maxInboundMessage caps client frames; the channel is server to client.
	maxInboundMessage = 512
)

// wsSubscriber is one push-channel connection registered with the
// broadcast hub.
//
// Writes are serialized by writeMu and bounded by a write deadline. A reader
// goroutine drains control frames and marks the subscriber closed when the
// peer goes away; a pinger keeps idle intermediaries from dropping the
// connection.
type wsSubscriber struct {
	id   string
	conn *websocket.Conn

	writeMu sync.Mutex

	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

func newWSSubscriber(conn *websocket.Conn, logger *logger.Logger) *wsSubscriber {
	return &wsSubscriber{
		id:     utils.NewID(),
		conn:   conn,
		done:   make(chan struct{}),
		logger: logger,
	}
}

// start launches the reader and the pinger.
func (s *wsSubscriber) start(pingInterval time.Duration) {
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}
	go s.readLoop(2 * pingInterval)
	go s.pingLoop(pingInterval)
}

func (s *wsSubscriber) ID() string { return s.id }

func (s *wsSubscriber) Closed() bool { return s.closed.Load() }

// Done is closed once the subscriber is.
func (s *wsSubscriber) Done() <-chan struct{} { return s.done }

// Send writes msg as a text frame. A failed write closes the subscriber.
func (s *wsSubscriber) Send(ctx context.Context, msg string) error {
	if s.Closed() {
		return ErrSubscriberClosed
	}

	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	s.writeMu.Lock()
	err := s.conn.SetWriteDeadline(deadline)
	if err == nil {
		err = s.conn.WriteMessage(websocket.TextMessage, []byte(msg))
	}
	s.writeMu.Unlock()

	if err != nil {
		s.Close()
		return err
	}
	return nil
}

// Close sends a going-away frame, best effort, and closes the connection.
// It is idempotent.
func (s *wsSubscriber) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)

		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = s.conn.Close()
	})
	return err
}

func (s *wsSubscriber) readLoop(pongWait time.Duration) {
	defer s.Close()

	s.conn.SetReadLimit(maxInboundMessage)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !s.Closed() {
				s.logger.Debug().Err(err).Str("subscriber", s.id).Msg("push channel read failed")
			}
			return
		}
	}
}

func (s *wsSubscriber) pingLoop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.Close()
				return
			}
		}
	}
}

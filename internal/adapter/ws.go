package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/gorilla/websocket"
)

const wsHandshakeTimeout = 10 * time.Second

// Watch implements [ServerAdapter]. The token travels in the Authorization
// header; the ?token= form exists for browsers only.
func (h *httpServerAdapter) Watch(ctx context.Context, onRefresh func()) error {
	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: wsHandshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, h.pushURL(), header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			if mapped := mapStatus(resp.StatusCode, resp.Header, body); mapped != nil {
				return mapped
			}
		}
		return fmt.Errorf("push channel dial: %w", err)
	}
	defer conn.Close()

	h.logger.Debug().Str("url", h.baseURL.Host).Msg("push channel opened")

	stop := context.AfterFunc(ctx, func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return ErrPushChannelClosed
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return fmt.Errorf("%w: %w", ErrPushChannelClosed, err)
			}
			return fmt.Errorf("push channel read: %w", err)
		}

		if kind == websocket.TextMessage && string(payload) == models.PushRefresh {
			onRefresh()
			continue
		}
		h.logger.Debug().Int("type", kind).Msg("ignoring unexpected push message")
	}
}

// pushURL maps the base address onto the ws or wss scheme.
func (h *httpServerAdapter) pushURL() string {
	u := *h.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path += "/ws"
	return u.String()
}

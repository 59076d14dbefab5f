package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushServer upgrades /ws and hands the connection to script.
func pushServer(t *testing.T, script func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" || r.Header.Get("Authorization") != "Bearer "+testToken {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		script(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWatch_RefreshUntilGoingAway(t *testing.T) {
	srv := pushServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(models.PushRefresh))
		_ = conn.WriteMessage(websocket.TextMessage, []byte("something else"))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(models.PushRefresh))
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
	})

	var refreshes atomic.Int32
	err := newTestAdapter(t, srv.URL).Watch(context.Background(), func() { refreshes.Add(1) })

	assert.ErrorIs(t, err, ErrPushChannelClosed)
	assert.Equal(t, int32(2), refreshes.Load())
}

func TestWatch_ContextCancel(t *testing.T) {
	serverDone := make(chan struct{})
	srv := pushServer(t, func(conn *websocket.Conn) {
		defer close(serverDone)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(models.PushRefresh))
		// wait for the client to go away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- newTestAdapter(t, srv.URL).Watch(ctx, cancel)
	}()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	<-serverDone
}

func TestWatch_Unauthorized(t *testing.T) {
	srv := pushServer(t, func(*websocket.Conn) {})

	a := newTestAdapter(t, srv.URL)
	a.SetToken("wrong")

	err := a.Watch(context.Background(), func() {})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPushURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://127.0.0.1:8090", "ws://127.0.0.1:8090/ws"},
		{"https://bridge.example.com", "wss://bridge.example.com/ws"},
		{"https://bridge.example.com/prefix/", "wss://bridge.example.com/prefix/ws"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			a := newTestAdapter(t, tt.base)
			assert.Equal(t, tt.want, a.pushURL())
		})
	}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

// subscribe upgrades GET /ws to a push channel and registers it with the
// broadcast hub until the connection ends. The only message ever sent is
// "refresh".
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client
		log.Info().Err(err).Msg("push channel upgrade failed")
		return
	}

	sub := newWSSubscriber(conn, log)
	hub := h.services.BroadcastHub
	hub.Register(sub)
	sub.start(h.pingInterval)

	log.Debug().Str("subscriber", sub.ID()).Int("subscribers", hub.Len()).Msg("push channel opened")

	go func() {
		<-sub.Done()
		hub.Unregister(sub.ID())
	}()
}

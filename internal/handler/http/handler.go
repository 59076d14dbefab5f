package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/validators"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	allowAnyOrigin bool
	allowedOrigins map[string]struct{}
	trustProxy     bool

	upgrader     websocket.Upgrader
	pingInterval time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		validator:      validators.NewIssueValidator(),
		allowedOrigins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
		trustProxy:     cfg.TrustProxyHeaders,
		pingInterval:   defaultPingInterval,
		logger:         logger,
	}
	for _, origin := range cfg.AllowedOrigins {
		origin = normalizeOrigin(origin)
		if origin == "*" {
			h.allowAnyOrigin = true
			continue
		}
		if origin != "" {
			h.allowedOrigins[origin] = struct{}{}
		}
	}

	h.upgrader = websocket.Upgrader{
		HandshakeTimeout: 10 * time.Second,
		// the CORS middleware has already vetted the origin
		CheckOrigin: func(r *http.Request) bool {
			return h.originAllowed(r.Header.Get("Origin"))
		},
	}

	return h
}

func (h *Handler) originAllowed(origin string) bool {
	if origin == "" || h.allowAnyOrigin {
		return true
	}
	_, ok := h.allowedOrigins[normalizeOrigin(origin)]
	return ok
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

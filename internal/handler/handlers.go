package handler

import (
	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/handler/http"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
)

// Handlers groups the transport handlers the server exposes. The bridge
// speaks HTTP only; the push channel is upgraded from the same listener.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}

package server

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/handler"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Dependencies are the resources the server owns besides its listener.
// Closers are released in order after the workers have stopped, typically
// the vault then the settings store.
type Dependencies struct {
	PushChannels PushChannels
	Workers      BackgroundWorkers
	Closers      []io.Closer
}

type server struct {
	httpServer *httpServer
	deps       Dependencies

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, deps Dependencies, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		deps:            deps,
		shutdownTimeout: timeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown stops accepting requests and waits up to the shutdown timeout
// for in-flight ones. Hijacked push channels are not tracked by net/http,
// so they are closed explicitly afterwards.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.httpServer.Shutdown(ctx)

		if s.deps.PushChannels != nil {
			s.deps.PushChannels.CloseAll()
		}
		if s.deps.Workers != nil {
			s.deps.Workers.Stop()
		}
		for _, c := range s.deps.Closers {
			if err := c.Close(); err != nil {
				s.logger.Err(err).Msg("error releasing resource on shutdown")
			}
		}
	})
}

func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	if s.deps.Workers != nil {
		s.deps.Workers.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

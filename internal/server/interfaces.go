package server

import "context"

// Server defines the lifecycle contract of the bridge server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails. A bind error is returned before anything starts.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	// It is safe to call more than once.
	Shutdown()
}

// BackgroundWorkers is the set of jobs started with the server and stopped
// during shutdown.
type BackgroundWorkers interface {
	Start(ctx context.Context)
	Stop()
}

// PushChannels closes every open push channel on shutdown.
type PushChannels interface {
	CloseAll()
}

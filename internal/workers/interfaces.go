// Package workers runs the bridge's background jobs next to the HTTP
// server: the refresh broadcaster and the rate-limit sweeper. Workers are
// started once the listener is bound and stopped during shutdown.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; it launches the job and returns. The job runs until
// ctx is cancelled or Stop is called. Stop blocks until the job has exited
// and is safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Package server runs the bridge's HTTP listener and owns its lifecycle.
//
// RunServer binds the listener, starts the background workers and blocks
// until SIGINT, SIGTERM or SIGQUIT arrives or the listener fails. Shutdown
// then stops accepting requests, closes every push channel, stops the
// workers and releases the vault and the settings store, in that order.
package server

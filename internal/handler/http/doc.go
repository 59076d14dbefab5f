// Package http implements the HTTP transport layer of the bridge.
//
// It exposes route wiring, request handlers, and middleware used by the
// issue API and its push channel. Cross-cutting concerns such as CORS,
// authentication with rate limiting, request tracing, access logging and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http

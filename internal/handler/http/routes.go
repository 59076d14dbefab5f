package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route requires a bearer token; CORS and
// preflight handling run before authentication.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, h.withCORS)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/health", h.health)
		r.Get("/issues", h.listIssues)
		r.Post("/issues", h.syncIssues)
		r.Get("/issues/{id}", h.getIssue)
		r.Get("/ws", h.subscribe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

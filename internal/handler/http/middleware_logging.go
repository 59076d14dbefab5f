package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request. The query string is left
// out because the push channel accepts ?token=.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		level := zerolog.InfoLevel
		if rw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client", utils.ClientAddress(r)).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Bool("upgraded", rw.hijacked).
			Send()
	})
}

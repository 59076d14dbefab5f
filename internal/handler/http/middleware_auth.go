package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/gorilla/websocket"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// auth is an HTTP middleware that runs every request through
// [service.AuthGate]: the caller's address is charged against its rate
// limit first, then the bearer token is checked against the key registry.
//
// Rejections:
//   - 429 Too Many Requests with Retry-After when the budget is spent;
//   - 401 Unauthorized, with no detail, for a missing or unknown token.
//
// On success the X-RateLimit-* headers are set and the credential name and
// client id are stored in the request context.
//
// Browsers cannot attach headers to a websocket handshake, so on upgrade
// requests a ?token= query parameter stands in for the Authorization header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authorization := r.Header.Get("Authorization")
		if authorization == "" && websocket.IsWebSocketUpgrade(r) {
			if token := r.URL.Query().Get("token"); token != "" {
				authorization = "Bearer " + token
			}
		}

		clientID := utils.ClientAddress(r)
		result, err := h.services.AuthGate.Authenticate(r.Context(), clientID, authorization)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRateLimitExceeded):
				log.Warn().Str("client", clientID).Msg("rate limit exceeded")
				w.Header().Set(headerRetryAfter, strconv.Itoa(result.ResetSeconds))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			default:
				log.Info().Err(err).Str("client", clientID).Msg("request not authenticated")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		w.Header().Set(headerRateLimitLimit, strconv.Itoa(result.Limit))
		w.Header().Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
		w.Header().Set(headerRateLimitReset, strconv.Itoa(result.ResetSeconds))

		ctx := utils.WithCredentialName(r.Context(), result.Credential.Name)
		ctx = utils.WithClientID(ctx, clientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/internal/validators"
	"github.com/MKhiriev/go-issue-bridge/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:         http.StatusUnauthorized,
	service.ErrRateLimitExceeded:    http.StatusTooManyRequests,
	service.ErrInvalidFilterPattern: http.StatusBadRequest,
	service.ErrInvalidThreshold:     http.StatusBadRequest,
	service.ErrIssueNotFound:        http.StatusNotFound,
	service.ErrSourceUnavailable:    http.StatusServiceUnavailable,

	validators.ErrThresholdTooLong: http.StatusBadRequest,
	validators.ErrNameRegexTooLong: http.StatusBadRequest,
	validators.ErrTooManyKnownIDs:  http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,
	validators.ErrUnknownField:     http.StatusBadRequest,

	ErrOriginNotAllowed: http.StatusForbidden,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry a
// JSON body with the reason; everything else gets the bare status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	switch {
	case status == http.StatusBadRequest:
		log.Info().Err(err).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
	default:
		log.Debug().Err(err).Int("status", status).Send()
		http.Error(w, http.StatusText(status), status)
	}
}

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Header(), resp.Body())
}

// mapStatus turns a non-2xx answer into a sentinel error carrying the
// server's reason. 400 bodies are JSON; other statuses carry plain text.
func mapStatus(status int, header http.Header, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(string(body))
	var errResp models.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		reason = errResp.Error
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: retry after %ss", ErrRateLimited, header.Get("Retry-After"))
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		if reason == "" {
			reason = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, reason)
	}
}

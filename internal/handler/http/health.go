package http

import (
	"net/http"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/models"
)

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
)

// health reports the version, the live finding count and the number of
// push-channel subscribers. An unreachable finding source degrades the
// status but still answers 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := models.HealthResponse{
		Status:      healthOK,
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		Subscribers: h.services.BroadcastHub.Len(),
	}

	count, err := h.services.IssueService.Count(ctx)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health: finding source unavailable")
		resp.Status = healthDegraded
	} else {
		resp.Issues = count
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/internal/validators"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/go-chi/chi/v5"
)

// maxSyncBodyBytes bounds POST /issues bodies.
const maxSyncBodyBytes = 4 << 20

// listIssues answers GET /issues: the diff against an empty known set, i.e.
// every issue passing the filters.
func (h *Handler) listIssues(w http.ResponseWriter, r *http.Request) {
	h.answerSync(w, r, []string{})
}

// syncIssues answers POST /issues with body {"knownIds": [...]}. A body that
// cannot be decoded is logged and treated as an empty known set; more than
// validators.MaxKnownIDs ids is a 400.
func (h *Handler) syncIssues(w http.ResponseWriter, r *http.Request) {
	known, err := h.readKnownIDs(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.answerSync(w, r, known)
}

func (h *Handler) answerSync(w http.ResponseWriter, r *http.Request, known []string) {
	ctx := r.Context()

	query := issueQueryFromRequest(r)
	if err := h.validator.Validate(ctx, query); err != nil {
		writeError(w, r, err)
		return
	}

	diff, err := h.services.IssueService.Sync(ctx, query, known)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, diff, http.StatusOK)
}

// getIssue answers GET /issues/{id}. Filters do not apply.
func (h *Handler) getIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.services.IssueService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, issue, http.StatusOK)
}

// readKnownIDs returns the known ids exactly as sent. Ids that are not
// fingerprints are kept: they can never match an issue, so the diff reports
// them as removed.
func (h *Handler) readKnownIDs(w http.ResponseWriter, r *http.Request) ([]string, error) {
	var req models.SyncRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSyncBodyBytes)).Decode(&req); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.readKnownIDs").Msg("malformed sync body, treating known set as empty")
		return []string{}, nil
	}

	if err := h.validator.Validate(r.Context(), req, validators.FieldKnownIDs); err != nil {
		return nil, err
	}
	if req.KnownIDs == nil {
		return []string{}, nil
	}
	return req.KnownIDs, nil
}

// issueQueryFromRequest reads the filter parameters. Missing values are
// permissive; an unparsable inScope is false.
func issueQueryFromRequest(r *http.Request) models.IssueQuery {
	values := r.URL.Query()
	inScope, _ := strconv.ParseBool(values.Get("inScope"))

	return models.IssueQuery{
		MinSeverity:   values.Get("minSeverity"),
		MinConfidence: values.Get("minConfidence"),
		InScopeOnly:   inScope,
		NameRegex:     values.Get("nameRegex"),
	}
}

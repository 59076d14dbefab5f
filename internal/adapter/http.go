package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. cfg.HTTPAddress may omit the scheme, in which case http
// is assumed. The token from cfg, if any, is installed right away.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("address must include a host")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery, u.Fragment = "", ""
	return u, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) Issues(ctx context.Context, q models.IssueQuery) (models.SyncResponse, error) {
	var diff models.SyncResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParams(queryParams(q)).
		SetResult(&diff).
		Get("/issues")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("issues request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	return diff, nil
}

func (h *httpServerAdapter) Sync(ctx context.Context, q models.IssueQuery, known []string) (models.SyncResponse, error) {
	if known == nil {
		known = []string{}
	}

	var diff models.SyncResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParams(queryParams(q)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncRequest{KnownIDs: known}).
		SetResult(&diff).
		Post("/issues")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	return diff, nil
}

func (h *httpServerAdapter) Get(ctx context.Context, id string) (models.Issue, error) {
	var issue models.Issue

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&issue).
		Get("/issues/{id}")
	if err != nil {
		return models.Issue{}, fmt.Errorf("get issue request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Issue{}, err
	}

	return issue, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// queryParams omits empty filters so the server applies its defaults.
func queryParams(q models.IssueQuery) map[string]string {
	params := make(map[string]string, 4)
	if q.MinSeverity != "" {
		params["minSeverity"] = q.MinSeverity
	}
	if q.MinConfidence != "" {
		params["minConfidence"] = q.MinConfidence
	}
	if q.InScopeOnly {
		params["inScope"] = strconv.FormatBool(true)
	}
	if q.NameRegex != "" {
		params["nameRegex"] = q.NameRegex
	}
	return params
}

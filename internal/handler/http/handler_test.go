package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/mock"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "good-token"
	testClient = "192.0.2.1"
)

type handlerDeps struct {
	gate   *mock.MockAuthGate
	issues *mock.MockIssueService
	hub    *mock.MockBroadcastHub
	info   *mock.MockAppInfoService
}

// newMockedHandler wires a Handler to gomock collaborators. Requests
// carrying testToken authenticate; anything else is unauthorized.
func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, *handlerDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := &handlerDeps{
		gate:   mock.NewMockAuthGate(ctrl),
		issues: mock.NewMockIssueService(ctrl),
		hub:    mock.NewMockBroadcastHub(ctrl),
		info:   mock.NewMockAppInfoService(ctrl),
	}

	deps.gate.EXPECT().
		Authenticate(gomock.Any(), gomock.Any(), "Bearer "+testToken).
		Return(service.AuthResult{
			Credential:   models.Credential{Name: "ci"},
			Limit:        10,
			Remaining:    9,
			ResetSeconds: 60,
		}, nil).
		AnyTimes()
	deps.gate.EXPECT().
		Authenticate(gomock.Any(), gomock.Any(), gomock.Not("Bearer "+testToken)).
		Return(service.AuthResult{Limit: 10, Remaining: 8, ResetSeconds: 60}, service.ErrUnauthorized).
		AnyTimes()

	services := &service.Services{
		AuthGate:       deps.gate,
		IssueService:   deps.issues,
		BroadcastHub:   deps.hub,
		AppInfoService: deps.info,
	}
	return NewHandler(services, cfg, logger.Nop()), deps
}

func authorizedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_Origins(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{
		AllowedOrigins: []string{" https://App.example.com/ ", "", "http://localhost:3000"},
	}, logger.Nop())

	require.NotNil(t, h)
	assert.False(t, h.allowAnyOrigin)
	assert.Len(t, h.allowedOrigins, 2)

	assert.True(t, h.originAllowed(""))
	assert.True(t, h.originAllowed("https://app.example.com"))
	assert.True(t, h.originAllowed("HTTP://LOCALHOST:3000/"))
	assert.False(t, h.originAllowed("https://evil.example.com"))
}

func TestNewHandler_Wildcard(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())

	assert.True(t, h.allowAnyOrigin)
	assert.True(t, h.originAllowed("https://anything.example.com"))
}

func TestNewHandler_NoOriginsAllowsOnlyNonBrowserClients(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.True(t, h.originAllowed(""))
	assert.False(t, h.originAllowed("http://localhost:3000"))
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, deps := newMockedHandler(t, config.Server{})
	deps.issues.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.NewSyncResponse(), nil).AnyTimes()
	deps.issues.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Issue{}, service.ErrIssueNotFound).AnyTimes()
	deps.issues.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	deps.hub.EXPECT().Len().Return(0).AnyTimes()
	deps.info.EXPECT().GetAppVersion(gomock.Any()).Return("test").AnyTimes()

	router := h.Init()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/issues", http.StatusOK},
		{http.MethodPost, "/issues", http.StatusOK},
		{http.MethodGet, "/issues/0123456789abcdef", http.StatusNotFound},
		// plain GET without upgrade headers is refused by the upgrader
		{http.MethodGet, "/ws", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, authorizedRequest(tt.method, tt.path))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestInit_EveryRouteRequiresAuth(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})
	router := h.Init()

	for _, path := range []string{"/health", "/issues", "/issues/abc", "/ws"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Empty(t, rr.Header().Get(headerRateLimitLimit))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rr := serve(h.Init(), authorizedRequest(http.MethodGet, "/api/nonexistent"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})
	router := h.Init()

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rr := serve(router, authorizedRequest(method, "/issues"))
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/issues", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, deps := newMockedHandler(t, config.Server{})
	deps.issues.EXPECT().Get(gomock.Any(), "boom").DoAndReturn(func(_ any, _ string) (models.Issue, error) {
		panic("boom")
	})

	rr := serve(h.Init(), authorizedRequest(http.MethodGet, "/issues/boom"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

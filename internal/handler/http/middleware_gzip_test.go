// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "client does not accept gzip", acceptEncoding: "", wantGzip: false},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", wantGzip: true},
		{name: "gzip with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzip: true},
	}

	body := `{"newIssues":[],"removedIds":[]}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "999")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(http.MethodGet, "/issues", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Empty(t, rr.Header().Get("Content-Length"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, body, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, body, rr.Body.String())
		})
	}
}

func TestGZip_ImplicitHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("finding ", 1000)))
	})

	req := httptest.NewRequest(http.MethodGet, "/issues", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Less(t, rr.Body.Len(), 8000/10, "repetitive data should compress well")
	assert.Equal(t, strings.Repeat("finding ", 1000), gunzip(t, rr.Body))
}

func TestGZip_RequestBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzipped body is decoded",
			contentEncoding: "gzip",
			body:            gzipped(t, []byte(`{"knownIds":[]}`)),
			wantStatus:      http.StatusOK,
			wantBody:        `{"knownIds":[]}`,
		},
		{
			name:            "gzip among several encodings",
			contentEncoding: "gzip, deflate",
			body:            gzipped(t, []byte("data")),
			wantStatus:      http.StatusOK,
			wantBody:        "data",
		},
		{
			name:            "invalid gzip body",
			contentEncoding: "gzip",
			body:            strings.NewReader("not gzipped"),
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:       "plain body untouched",
			body:       strings.NewReader("plain"),
			wantStatus: http.StatusOK,
			wantBody:   "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				_, _ = w.Write(data)
			})

			req := httptest.NewRequest(http.MethodPost, "/issues", tt.body)
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_NoBodyStaysUncompressed(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified, http.StatusInternalServerError} {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		req := httptest.NewRequest(http.MethodGet, "/issues", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, status, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	}
}

func TestGZip_StatusKeptWithBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"error":"invalid filter pattern"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/issues?nameRegex=(", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"error":"invalid filter pattern"}`, gunzip(t, rr.Body))
}

func TestGZip_SkipsWebsocketUpgrade(t *testing.T) {
	var sawWriter http.ResponseWriter
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawWriter = w
	})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Same(t, rr, sawWriter, "upgrade requests must get the original writer")
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

func TestGZip_PoolReuseUnderConcurrency(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Query().Get("n")))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodGet, "/issues?n="+n, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, n, string(out))
		}(i)
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("test"), OnClose: func() { called = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}

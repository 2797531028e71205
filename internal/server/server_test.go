package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sparkbar/pkg/cache"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/observability"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, "server:"), logger)
	ts := httptest.NewServer(New(runner, cfg, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeError(t *testing.T, body []byte) errorBody {
	t.Helper()
	var eb errorBody
	require.NoError(t, json.Unmarshal(body, &eb), "body: %s", body)
	return eb
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestSparklineFormats(t *testing.T) {
	ts := newTestServer(t, Config{})

	tests := []struct {
		path        string
		contentType string
		prefix      []byte
	}{
		{"/sparkline.svg?type=dual&heights=1,-2,3", "image/svg+xml", []byte("<svg ")},
		{"/sparkline.png?type=dual&heights=1,-2,3", "image/png", []byte("\x89PNG")},
		{"/sparkline.json?type=dual&heights=%5B1,-2,3%5D", "application/json", []byte("{")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			assert.True(t, bytes.HasPrefix(body, tt.prefix))
			assert.NotEmpty(t, resp.Header.Get("ETag"))
			assert.NotEmpty(t, resp.Header.Get("X-Sparkbar-Run"))
		})
	}
}

func TestSparklineQueryOverrides(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, body := get(t, ts.URL+"/sparkline.json?type=positive&heights=1,2&width=9&height=10&minBarWidth=4&barGap=1&plus=%23000000")
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

	var doc pipeline.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	// floor(9/2)=4 and 4*2+1 = 9 fits exactly
	assert.Equal(t, 4.0, doc.Layout.BarWidth)
	assert.Len(t, doc.Layout.Bars, 2)
	assert.Equal(t, "#000000", doc.Layout.Bars[0].FillColor)
	assert.Equal(t, 10.0, doc.Layout.SurfaceHeight)
}

func TestSparklineUsesDefaults(t *testing.T) {
	ts := newTestServer(t, Config{Defaults: pipeline.Options{Type: "tri", Heights: []float64{-1, 0, 1}, Width: 30, Height: 8}})

	resp, body := get(t, ts.URL+"/sparkline.json")
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

	var doc pipeline.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "tri", doc.Layout.Type.String())
	assert.Equal(t, []float64{-1, 0, 1}, doc.Layout.Heights)
}

func TestSparklineCacheHeader(t *testing.T) {
	ts := newTestServer(t, Config{})
	url := ts.URL + "/sparkline.svg?type=negative&heights=-1,-2"

	first, _ := get(t, url)
	second, _ := get(t, url)
	assert.Equal(t, "miss", first.Header.Get("X-Sparkbar-Cache"))
	assert.Equal(t, "hit", second.Header.Get("X-Sparkbar-Cache"))
}

func TestSparklineConditionalGet(t *testing.T) {
	ts := newTestServer(t, Config{})
	url := ts.URL + "/sparkline.svg?heights=3,1,4"

	first, _ := get(t, url)
	etag := first.Header.Get("ETag")
	require.NotEmpty(t, etag)
	assert.True(t, strings.HasPrefix(first.Header.Get("Server"), "sparkbar/"))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	// a different size is a different artifact
	other, _ := get(t, url+"&width=60")
	assert.NotEqual(t, etag, other.Header.Get("ETag"))

	for _, header := range []string{"W/" + etag, `"stale", ` + etag, "*"} {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)
		req.Header.Set("If-None-Match", header)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotModified, resp.StatusCode, "If-None-Match: %s", header)
	}
}

func TestETagMatch(t *testing.T) {
	const etag = `"abc123"`
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"abc123"`, true},
		{`W/"abc123"`, true},
		{`"old", "abc123"`, true},
		{`"old",W/"abc123"`, true},
		{"*", true},
		{`"abc12"`, false},
		{`abc123`, false},
	}

	for _, tt := range tests {
		if got := etagMatch(tt.header, etag); got != tt.want {
			t.Errorf("etagMatch(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSparklineErrors(t *testing.T) {
	ts := newTestServer(t, Config{MaxHeights: 3, MaxWidth: 500})

	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
	}{
		{"format", "/sparkline.gif?heights=1", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"type", "/sparkline.svg?type=pie&heights=1", http.StatusBadRequest, errors.ErrCodeInvalidChartType},
		{"no heights", "/sparkline.svg?type=dual", http.StatusBadRequest, errors.ErrCodeEmptyHeights},
		{"bad heights", "/sparkline.svg?heights=1,a", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"too many heights", "/sparkline.svg?heights=1,2,3,4", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad width", "/sparkline.svg?heights=1&width=wide", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"too wide", "/sparkline.svg?heights=1&width=501", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"gap", "/sparkline.svg?heights=1&barGap=0.5", http.StatusBadRequest, errors.ErrCodeBarGapTooSmall},
		{"color", "/sparkline.svg?heights=1&zero=grey", http.StatusBadRequest, errors.ErrCodeInvalidColor},
		{"malformed color number", "/sparkline.png?heights=1,2,3&plus=rgb(1,2,.)", http.StatusBadRequest, errors.ErrCodeInvalidColor},
		{"narrow", "/sparkline.svg?heights=1&width=2", http.StatusBadRequest, errors.ErrCodeSurfaceTooNarrow},
		{"degenerate", "/sparkline.svg?type=dual&heights=0,0", http.StatusBadRequest, errors.ErrCodeDegenerateScale},
		{"route", "/nowhere", http.StatusNotFound, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, tt.status, resp.StatusCode, "body: %s", body)
			eb := decodeError(t, body)
			assert.Equal(t, tt.code, eb.Error.Code)
			assert.NotEmpty(t, eb.Error.Message)
			assert.Equal(t, resp.Header.Get(RequestIDHeader), eb.RequestID)
		})
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t, Config{})
	const id = "0b8c3e7a-4a59-4f0e-9a55-2a3f4f1c9d10"

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
}

func TestHTTPHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &countingHTTPHooks{}
	observability.SetHTTPHooks(hooks)

	ts := newTestServer(t, Config{})
	get(t, ts.URL+"/healthz")
	get(t, ts.URL+"/sparkline.svg?type=tri")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	assert.Equal(t, 2, hooks.requests)
	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, hooks.statuses)
}

type countingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests int
	statuses []int
}

func (h *countingHTTPHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *countingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestListenAndServeShutsDown(t *testing.T) {
	s := New(pipeline.NewRunner(nil, nil, log.New(io.Discard)), Config{Addr: "127.0.0.1:0"}, log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, strings.HasPrefix(s.Addr(), "127.0.0.1"))
}

package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every pipeline, cache and HTTP event to a logger at
// debug level. The CLI installs it when run with -v.
type LogHooks struct {
	Logger *log.Logger
}

// Install registers h for all three event kinds.
func (h LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h LogHooks) OnLayoutStart(_ context.Context, chartType string, barCount int) {
	h.Logger.Debug("layout start", "type", chartType, "bars", barCount)
}

func (h LogHooks) OnLayoutComplete(_ context.Context, chartType string, d time.Duration, err error) {
	h.done("layout", d, err, "type", chartType)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "kind", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "kind", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}

func (h LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Microsecond))
	if err != nil {
		h.Logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(stage+" done", kv...)
}

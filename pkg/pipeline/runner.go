package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sparkbar/pkg/cache"
	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/observability"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer selects the default keyer and a
// nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout and render for opts.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.NewString()}
	logger := r.Logger.With("run", result.ID[:8])

	spec, _ := opts.Spec()
	specHash, err := cache.HashJSON(spec)
	if err != nil {
		return nil, err
	}
	result.SpecHash = specHash

	layoutStart := time.Now()
	l, layoutHit, err := r.layout(ctx, spec, specHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.BarCount = len(l.Bars)
	result.Stats.Dropped = l.Dropped
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"type", l.Type,
		"bars", len(l.Bars),
		"trimmed", l.Dropped,
		"bar_width", l.BarWidth,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout validates opts and returns the layout, using the cache.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) (chart.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return chart.Layout{}, false, err
	}
	spec, _ := opts.Spec()
	specHash, err := cache.HashJSON(spec)
	if err != nil {
		return chart.Layout{}, false, err
	}
	return r.layout(ctx, spec, specHash, opts)
}

func (r *Runner) layout(ctx context.Context, spec chart.Spec, specHash string, opts Options) (chart.Layout, bool, error) {
	key := r.Keyer.LayoutKey(specHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if l, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return l, true, nil
			}
		} else if err != nil {
			r.Logger.Debug("layout cache read failed", "err", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, spec.Type.String(), len(spec.Heights))
	start := time.Now()
	l, err := chart.Compute(spec, opts.Width, opts.Height)
	hooks.OnLayoutComplete(ctx, spec.Type.String(), time.Since(start), err)
	if err != nil {
		return chart.Layout{}, false, err
	}

	if data, err := MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Debug("layout cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// RenderWithCacheInfo renders every requested format, serving all of them
// from cache when possible. It reports whether the cache satisfied the
// whole request.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l chart.Layout, opts Options) (map[string][]byte, bool, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

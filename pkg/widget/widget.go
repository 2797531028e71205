// Package widget hosts a sparkline chart the way an embeddable UI element
// would: a mutable set of attributes and a redraw after every change.
//
// Unlike the chart engine, the widget never reports bad attributes as
// errors. An attribute set that does not describe a drawable chart is
// logged at debug level and the last good drawing is kept.
package widget

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/surface"
)

// Config holds the widget's attributes.
type Config struct {
	ChartType       string        `json:"chartType" toml:"chart_type"`
	Heights         []float64     `json:"barHeights" toml:"heights"`
	MinimumBarWidth float64       `json:"minimumBarWidth" toml:"minimum_bar_width"`
	BarGap          float64       `json:"barGap" toml:"bar_gap"`
	Colors          chart.Palette `json:"colors" toml:"colors"`
	ClassName       string        `json:"className,omitempty" toml:"class_name"`
	Width           float64       `json:"width" toml:"width"`
	Height          float64       `json:"height" toml:"height"`
}

// SurfaceFactory creates the surface for one render.
type SurfaceFactory func(width, height float64, className string) chart.Surface

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the logger used to report skipped renders.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) { w.logger = l }
}

// WithSurfaceFactory replaces the default SVG surface.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(w *Widget) { w.newSurface = f }
}

// Widget owns a Config and the surface produced by the last successful
// render. It is safe for concurrent use.
type Widget struct {
	mu         sync.Mutex
	cfg        Config
	newSurface SurfaceFactory
	logger     *log.Logger

	current chart.Surface
	layout  chart.Layout
	drawn   bool
}

// New creates a widget and renders it once.
func New(cfg Config, opts ...Option) *Widget {
	w := &Widget{
		cfg:        cloneConfig(cfg),
		newSurface: newSVGSurface,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Render()
	return w
}

func newSVGSurface(width, height float64, className string) chart.Surface {
	var opts []surface.SVGOption
	if className != "" {
		opts = append(opts, surface.WithSVGClass(className))
	}
	return surface.NewSVG(width, height, opts...)
}

// Config returns a copy of the current attributes.
func (w *Widget) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneConfig(w.cfg)
}

// Surface returns the surface of the last successful render, or nil.
func (w *Widget) Surface() chart.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Layout returns the layout of the last successful render.
func (w *Widget) Layout() (chart.Layout, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.layout, w.drawn
}

// Render draws the current attributes onto a fresh surface. It reports
// whether a new drawing was produced.
func (w *Widget) Render() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.render()
}

func (w *Widget) render() bool {
	spec, err := w.spec()
	if err != nil {
		w.skip(err)
		return false
	}
	// Size is checked before a surface is allocated.
	if !(w.cfg.Width > 0) || !(w.cfg.Height > 0) {
		w.skip(errors.New(errors.ErrCodeInvalidInput, "size %vx%v", w.cfg.Width, w.cfg.Height))
		return false
	}

	s := w.newSurface(w.cfg.Width, w.cfg.Height, w.cfg.ClassName)
	l, err := chart.Draw(s, spec)
	if err != nil {
		w.skip(err)
		return false
	}
	w.current, w.layout, w.drawn = s, l, true
	w.logger.Debug("rendered", "type", l.Type, "bars", len(l.Bars), "trimmed", l.Dropped)
	return true
}

func (w *Widget) spec() (chart.Spec, error) {
	t, err := chart.ParseChartType(w.cfg.ChartType)
	if err != nil {
		return chart.Spec{}, err
	}
	return chart.NewSpec(t, w.cfg.Heights, w.cfg.MinimumBarWidth, w.cfg.BarGap, w.cfg.Colors)
}

func (w *Widget) skip(err error) {
	w.logger.Debug("render skipped", "code", errors.GetCode(err), "reason", errors.UserMessage(err))
}

// update applies fn to the config and re-renders.
func (w *Widget) update(fn func(*Config)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.cfg)
	return w.render()
}

// SetChartType sets the chart type by name and re-renders.
func (w *Widget) SetChartType(name string) bool {
	return w.update(func(c *Config) { c.ChartType = name })
}

// SetHeights copies heights and re-renders.
func (w *Widget) SetHeights(heights []float64) bool {
	heights = slices.Clone(heights)
	return w.update(func(c *Config) { c.Heights = heights })
}

// SetHeightsAttr parses heights from attribute text (see ParseHeights) and
// re-renders. Unparsable text leaves the heights unchanged.
func (w *Widget) SetHeightsAttr(s string) bool {
	heights, err := ParseHeights(s)
	if err != nil {
		w.mu.Lock()
		w.skip(err)
		w.mu.Unlock()
		return false
	}
	return w.SetHeights(heights)
}

// SetMinimumBarWidth sets the minimum bar width and re-renders.
func (w *Widget) SetMinimumBarWidth(v float64) bool {
	return w.update(func(c *Config) { c.MinimumBarWidth = v })
}

// SetBarGap sets the bar gap and re-renders.
func (w *Widget) SetBarGap(v float64) bool {
	return w.update(func(c *Config) { c.BarGap = v })
}

// SetFillColorMinus sets the color of negative bars and re-renders.
func (w *Widget) SetFillColorMinus(css string) bool {
	return w.update(func(c *Config) { c.Colors.Minus = css })
}

// SetFillColorZero sets the color of zero bars and re-renders.
func (w *Widget) SetFillColorZero(css string) bool {
	return w.update(func(c *Config) { c.Colors.Zero = css })
}

// SetFillColorPlus sets the color of positive bars and re-renders.
func (w *Widget) SetFillColorPlus(css string) bool {
	return w.update(func(c *Config) { c.Colors.Plus = css })
}

// SetClassName sets the class of the produced surface and re-renders.
func (w *Widget) SetClassName(name string) bool {
	return w.update(func(c *Config) { c.ClassName = name })
}

// SetSize sets the surface size and re-renders.
func (w *Widget) SetSize(width, height float64) bool {
	return w.update(func(c *Config) { c.Width, c.Height = width, height })
}

func cloneConfig(c Config) Config {
	c.Heights = slices.Clone(c.Heights)
	return c
}

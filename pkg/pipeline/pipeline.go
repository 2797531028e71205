// Package pipeline runs the layout → render flow shared by the CLI, the HTTP
// server and the widget host.
//
// # Stages
//
//  1. Layout: validate the chart and fit it onto the requested surface size
//     (see [chart.Compute])
//  2. Render: replay the layout onto one surface per requested format
//     (SVG, PNG, JSON)
//
// Both stages are cached through [cache.Cache] when a Runner is configured
// with one.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Type:    "dual",
//	    Heights: []float64{3, -1, 4, -1, 5},
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sparkbar/pkg/cache"
	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/color"
	"github.com/matzehuels/sparkbar/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultType is the chart type used when none is given.
	DefaultType = "positive"

	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 120.0

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 30.0

	// DefaultMinimumBarWidth is the narrowest bar the fit will accept.
	DefaultMinimumBarWidth = chart.MinBarWidthLimit

	// DefaultBarGap is the gap between adjacent bars.
	DefaultBarGap = chart.MinBarGapLimit
)

// DefaultColors is the palette used for any color slot left empty.
var DefaultColors = chart.Palette{
	Minus: "#d9534f",
	Zero:  "#999999",
	Plus:  "#5cb85c",
}

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options describes one chart and how to render it. Zero numeric fields and
// empty strings are replaced by defaults; everything else is validated by
// the chart engine.
type Options struct {
	// Chart
	Type            string        `json:"type" toml:"type"`
	Heights         []float64     `json:"heights" toml:"heights"`
	MinimumBarWidth float64       `json:"minimum_bar_width,omitempty" toml:"minimum_bar_width"`
	BarGap          float64       `json:"bar_gap,omitempty" toml:"bar_gap"`
	Colors          chart.Palette `json:"colors" toml:"colors"`

	// Surface
	Width  float64 `json:"width,omitempty" toml:"width"`
	Height float64 `json:"height,omitempty" toml:"height"`

	// Render
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	Background string   `json:"background,omitempty" toml:"background"`
	Refresh    bool     `json:"refresh,omitempty" toml:"-"`

	Logger *log.Logger `json:"-" toml:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and HTTP responses.
	ID string

	// SpecHash is the content hash of the validated chart.
	SpecHash string

	Layout    chart.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BarCount   int
	Dropped    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills every unset field with its default.
func (o *Options) SetDefaults() {
	if o.Type == "" {
		o.Type = DefaultType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.MinimumBarWidth == 0 {
		o.MinimumBarWidth = DefaultMinimumBarWidth
	}
	if o.BarGap == 0 {
		o.BarGap = DefaultBarGap
	}
	if o.Colors.Minus == "" {
		o.Colors.Minus = DefaultColors.Minus
	}
	if o.Colors.Zero == "" {
		o.Colors.Zero = DefaultColors.Zero
	}
	if o.Colors.Plus == "" {
		o.Colors.Plus = DefaultColors.Plus
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates the render options
// and the chart. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Background != "" && !color.Valid(o.Background) {
		return errors.New(errors.ErrCodeInvalidColor, "invalid background color: %q", o.Background)
	}
	if _, err := o.Spec(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Spec converts the chart fields into a validated chart.Spec.
func (o *Options) Spec() (chart.Spec, error) {
	t, err := chart.ParseChartType(o.Type)
	if err != nil {
		return chart.Spec{}, err
	}
	return chart.NewSpec(t, o.Heights, o.MinimumBarWidth, o.BarGap, o.Colors)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Background: o.Background}
}

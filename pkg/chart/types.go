package chart

import (
	"strings"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

// ChartType selects baseline placement, draw direction and color rules.
// The zero value is not a valid chart type.
type ChartType int

// Chart types.
const (
	Positive ChartType = iota + 1
	Negative
	Dual
	Tri
)

var chartTypeNames = map[ChartType]string{
	Positive: "positive",
	Negative: "negative",
	Dual:     "dual",
	Tri:      "tri",
}

// ChartTypes lists every valid chart type in declaration order.
var ChartTypes = []ChartType{Positive, Negative, Dual, Tri}

// ParseChartType converts a chart type name (case-insensitive) into a
// ChartType.
func ParseChartType(s string) (ChartType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range ChartTypes {
		if chartTypeNames[t] == name {
			return t, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidChartType, "invalid chart type: %q (must be positive, negative, dual or tri)", s)
}

// Valid reports whether t is one of the four chart types.
func (t ChartType) Valid() bool {
	_, ok := chartTypeNames[t]
	return ok
}

// String returns the lowercase chart type name.
func (t ChartType) String() string {
	if name, ok := chartTypeNames[t]; ok {
		return name
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (t ChartType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidChartType, "invalid chart type: %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ChartType) UnmarshalText(b []byte) error {
	parsed, err := ParseChartType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Palette holds the three fill colors as CSS color strings.
type Palette struct {
	Minus string `json:"minus" toml:"minus"`
	Zero  string `json:"zero" toml:"zero"`
	Plus  string `json:"plus" toml:"plus"`
}

// Bar is one rectangle in local (pre-transform) coordinates.
// X is always 0: horizontal placement comes from the translation applied
// between bars during rendering.
type Bar struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FillColor string  `json:"fill_color"`
}

// Transform is the affine map applied once before any bar is drawn.
// Skew components are always zero.
type Transform struct {
	HorizontalScale     float64 `json:"horizontal_scale"`
	VerticalScale       float64 `json:"vertical_scale"`
	HorizontalTranslate float64 `json:"horizontal_translate"`
	VerticalTranslate   float64 `json:"vertical_translate"`
}

// Apply maps a local point to surface coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.HorizontalScale*x + t.HorizontalTranslate, t.VerticalScale*y + t.VerticalTranslate
}

// Layout is the result of fitting a Spec onto a surface.
type Layout struct {
	Type          ChartType `json:"type"`
	SurfaceWidth  float64   `json:"surface_width"`
	SurfaceHeight float64   `json:"surface_height"`
	Heights       []float64 `json:"heights"`
	Dropped       int       `json:"dropped"`
	BarWidth      float64   `json:"bar_width"`
	BarGap        float64   `json:"bar_gap"`
	Bars          []Bar     `json:"bars"`
	Transform     Transform `json:"transform"`
}

// Stride returns the horizontal distance between the origins of two
// adjacent bars.
func (l Layout) Stride() float64 { return l.BarWidth + l.BarGap }

// RequiredWidth returns the surface width occupied by the bars and gaps.
func (l Layout) RequiredWidth() float64 {
	return requiredWidth(l.BarWidth, len(l.Heights), l.BarGap)
}

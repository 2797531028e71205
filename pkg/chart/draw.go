package chart

import (
	"slices"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

// Surface is the drawing target of a render pass. It mirrors the subset of a
// 2D canvas context the chart needs.
type Surface interface {
	// Width and Height return the surface's pixel dimensions.
	Width() float64
	Height() float64

	// SetTransform replaces the current transform with the matrix
	//	| a c e |
	//	| b d f |
	SetTransform(a, b, c, d, e, f float64)

	// Translate composes a translation into the current transform.
	Translate(dx, dy float64)

	// SetFillColor selects the CSS color used by subsequent FillRect calls.
	SetFillColor(css string)

	// FillRect fills a rectangle in local coordinates.
	FillRect(x, y, w, h float64)
}

// Compute validates spec and fits it onto a surface of the given size. It is
// pure: the same inputs always yield an identical Layout.
func Compute(spec Spec, surfaceWidth, surfaceHeight float64) (Layout, error) {
	if err := spec.Validate(); err != nil {
		return Layout{}, err
	}
	if !(surfaceWidth > 0) || !(surfaceHeight > 0) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"surface dimensions must be positive: %vx%v", surfaceWidth, surfaceHeight)
	}

	fitted, barWidth, err := FitBarWidth(surfaceWidth, spec.Heights, spec.MinimumBarWidth)
	if err != nil {
		return Layout{}, err
	}
	fitted = FitGaps(surfaceWidth, fitted, barWidth, spec.BarGap)

	tr, err := DeriveTransform(spec.Type, surfaceHeight, spec.Heights)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Type:          spec.Type,
		SurfaceWidth:  surfaceWidth,
		SurfaceHeight: surfaceHeight,
		Heights:       slices.Clone(fitted),
		Dropped:       len(spec.Heights) - len(fitted),
		BarWidth:      barWidth,
		BarGap:        spec.BarGap,
		Bars:          BuildBars(fitted, barWidth, spec.Type, surfaceHeight, spec.Colors),
		Transform:     tr,
	}, nil
}

// Render applies the layout's transform once, then fills each bar and
// advances the local origin by one bar width plus one gap (Stride), so
// consecutive bars are separated by exactly barGap.
func Render(s Surface, l Layout) {
	tr := l.Transform
	s.SetTransform(tr.HorizontalScale, 0, 0, tr.VerticalScale, tr.HorizontalTranslate, tr.VerticalTranslate)
	for _, b := range l.Bars {
		s.SetFillColor(b.FillColor)
		s.FillRect(b.X, b.Y, b.Width, b.Height)
		s.Translate(l.Stride(), 0)
	}
}

// Draw computes the layout for the surface's current size and renders it.
// On error the surface is left untouched.
func Draw(s Surface, spec Spec) (Layout, error) {
	l, err := Compute(spec, s.Width(), s.Height())
	if err != nil {
		return Layout{}, err
	}
	Render(s, l)
	return l, nil
}

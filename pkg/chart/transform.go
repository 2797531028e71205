package chart

import (
	"math"
	"slices"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

// DeriveTransform computes the surface transform for a chart type. heights
// must be the original, untrimmed heights so the scale does not jump when
// bars are dropped for width reasons.
//
// The surface's native origin is top-left with y growing downward. Each type
// moves the logical baseline (bottom for positive, top for negative, middle
// for dual and tri) and flips the y axis so positive local heights grow up.
//
// A scale that is not finite (all-zero data, for example) is reported as
// DEGENERATE_SCALE rather than handed to a surface.
func DeriveTransform(t ChartType, surfaceHeight float64, heights []float64) (Transform, error) {
	if len(heights) == 0 {
		return Transform{}, errors.New(errors.ErrCodeEmptyHeights, "bar heights is empty")
	}

	tr := Transform{HorizontalScale: 1}
	switch t {
	case Positive:
		tr.VerticalScale = -surfaceHeight / slices.Max(heights)
		tr.VerticalTranslate = surfaceHeight
	case Negative:
		tr.VerticalScale = -surfaceHeight / math.Abs(slices.Min(heights))
	case Dual:
		extent := math.Max(math.Abs(slices.Min(heights)), slices.Max(heights))
		tr.VerticalScale = -surfaceHeight / (extent / 2)
		tr.VerticalTranslate = surfaceHeight / 2
	case Tri:
		tr.VerticalScale = -1
		tr.VerticalTranslate = surfaceHeight / 2
	default:
		return Transform{}, errors.New(errors.ErrCodeInvalidChartType, "invalid chart type: %d", int(t))
	}

	if math.IsInf(tr.VerticalScale, 0) || math.IsNaN(tr.VerticalScale) {
		return Transform{}, errors.New(errors.ErrCodeDegenerateScale,
			"cannot scale %s chart: heights span no vertical extent", t)
	}
	return tr, nil
}

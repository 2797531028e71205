package chart

import (
	"math"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

// FitBarWidth drops the leftmost heights until floor(surfaceWidth/n) is at
// least minimumBarWidth. It returns the surviving suffix of heights and the
// resulting bar width.
//
// If even a single bar is narrower than minimumBarWidth, FitBarWidth returns
// a SURFACE_TOO_NARROW error.
func FitBarWidth(surfaceWidth float64, heights []float64, minimumBarWidth float64) ([]float64, float64, error) {
	if len(heights) == 0 {
		return nil, 0, errors.New(errors.ErrCodeEmptyHeights, "bar heights is empty")
	}

	fitted := heights
	barWidth := computeBarWidth(surfaceWidth, len(fitted))
	for barWidth < minimumBarWidth && len(fitted) > 1 {
		fitted = fitted[1:]
		barWidth = computeBarWidth(surfaceWidth, len(fitted))
	}

	if barWidth < minimumBarWidth {
		return nil, 0, errors.New(errors.ErrCodeSurfaceTooNarrow,
			"surface width %v cannot hold a single bar of minimum width %v", surfaceWidth, minimumBarWidth)
	}
	return fitted, barWidth, nil
}

// FitGaps drops the leftmost heights until n bars of barWidth separated by
// n-1 gaps of barGap fit within surfaceWidth. A single bar is never dropped.
func FitGaps(surfaceWidth float64, heights []float64, barWidth, barGap float64) []float64 {
	fitted := heights
	for len(fitted) > 1 && requiredWidth(barWidth, len(fitted), barGap) > surfaceWidth {
		fitted = fitted[1:]
	}
	return fitted
}

func computeBarWidth(surfaceWidth float64, n int) float64 {
	return math.Floor(surfaceWidth / float64(n))
}

func requiredWidth(barWidth float64, n int, barGap float64) float64 {
	if n == 0 {
		return 0
	}
	return barWidth*float64(n) + barGap*float64(n-1)
}

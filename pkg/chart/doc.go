// Package chart computes and draws sparkline bar charts.
//
// # Overview
//
// A sparkline bar chart is a row of rectangles drawn against an x-axis
// baseline. Given a [Spec] and the pixel dimensions of a drawing surface, the
// package produces a [Layout] containing everything needed to draw:
//
//   - The heights that fit on the surface (a right-aligned suffix of the input)
//   - The shared bar width
//   - One [Bar] per fitted height, in local coordinates
//   - The affine [Transform] that maps local coordinates to surface pixels
//
// # Fitting
//
// Bars are fitted in two passes. [FitBarWidth] drops the leftmost (oldest)
// heights until floor(surfaceWidth/n) reaches the minimum bar width.
// [FitGaps] then drops further heights until bars plus the gaps between them
// fit the surface. Neither pass shrinks the bar width or the gap.
//
// # Chart Types
//
// The four [ChartType] values select the logical baseline and the color
// rules:
//
//   - [Positive]: baseline at the bottom, bars grow up, plus color
//   - [Negative]: baseline at the top, bars grow down, minus color
//   - [Dual]: baseline in the middle, color by sign
//   - [Tri]: baseline in the middle, equal-sized level bars, color by sign
//
// The transform is always derived from the full, untrimmed heights so the
// vertical scale stays stable when data is dropped for width reasons.
//
// # Drawing
//
// [Draw] runs the whole pipeline against a [Surface]:
//
//	spec, err := chart.NewSpec(chart.Dual, heights, 3, 1, chart.Palette{
//	    Minus: "#d9534f", Zero: "#999", Plus: "#5cb85c",
//	})
//	if err != nil {
//	    return err
//	}
//	layout, err := chart.Draw(surface, spec)
//
// Validation and layout complete before the surface is touched, so a failed
// Draw leaves the surface unchanged.
package chart

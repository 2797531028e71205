package chart

// BuildBars produces one Bar per height, in order, according to the chart
// type's rules:
//
//	type      y          height                    color
//	positive  0          v                         plus
//	negative  0          v                         minus
//	dual      0          v                         plus if v > 0, else minus
//	tri       -H/4       H if v == 0, else H/4     minus / zero / plus by sign
//
// where H is surfaceHeight. Tri bars ignore the magnitude of v: they are
// level indicators, not a magnitude chart. Negative heights on a positive
// chart are not clipped here; the transform pushes them off the surface.
func BuildBars(heights []float64, barWidth float64, t ChartType, surfaceHeight float64, colors Palette) []Bar {
	bars := make([]Bar, 0, len(heights))
	for _, v := range heights {
		bar := Bar{Width: barWidth}
		switch t {
		case Positive:
			bar.Height = v
			bar.FillColor = colors.Plus
		case Negative:
			bar.Height = v
			bar.FillColor = colors.Minus
		case Dual:
			bar.Height = v
			bar.FillColor = colors.Minus
			if v > 0 {
				bar.FillColor = colors.Plus
			}
		case Tri:
			bar.Y = -surfaceHeight / 4
			bar.Height = surfaceHeight / 4
			switch {
			case v < 0:
				bar.FillColor = colors.Minus
			case v == 0:
				bar.Height = surfaceHeight
				bar.FillColor = colors.Zero
			default:
				bar.FillColor = colors.Plus
			}
		}
		bars = append(bars, bar)
	}
	return bars
}

// Package pkg provides the core libraries for sparkbar sparkline bar charts.
//
// # Overview
//
// A sparkline is a row of bars sized to a fixed surface. The pkg directory is
// organized into these areas:
//
//  1. [chart] - Domain logic (validation, width fitting, bars, transform, render)
//  2. [surface] - Drawing backends (SVG, PNG, cell grid, call recorder)
//  3. [pipeline] - Orchestration (layout → render) with caching
//  4. [widget] - An embeddable chart that redraws on every attribute change
//  5. [cache] - File, Redis and null caches for layouts and artifacts
//  6. [errors], [color], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
//	heights + chart type
//	         ↓
//	    [chart] validate, fit bar width, drop bars, build bars
//	         ↓
//	    [chart] derive transform from the untrimmed heights
//	         ↓
//	    [surface] fill one rectangle per bar
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
//	spec, err := chart.NewSpec(chart.Dual, []float64{3, -1, 4, -1, 5}, 3, 1, chart.Palette{
//	    Minus: "#d9534f", Zero: "#999999", Plus: "#5cb85c",
//	})
//	if err != nil {
//	    return err
//	}
//	svg := surface.NewSVG(120, 30)
//	if _, err := chart.Draw(svg, spec); err != nil {
//	    return err
//	}
//	os.WriteFile("spark.svg", svg.Bytes(), 0o644)
//
// Or through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Type:    "dual",
//	    Heights: []float64{3, -1, 4, -1, 5},
//	    Formats: []string{"svg", "png"},
//	})
package pkg

package pipeline

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/color"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/surface"
)

// Document is the json output format: the layout plus the exact surface
// calls a render pass makes.
type Document struct {
	Layout chart.Layout `json:"layout"`
	Ops    []surface.Op `json:"ops"`
}

// RenderFromLayout replays l onto one surface per format in opts.Formats.
func RenderFromLayout(l chart.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = renderSVG(l, opts)
		case FormatPNG:
			data, err = renderPNG(l, opts)
		case FormatJSON:
			data, err = renderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderSVG(l chart.Layout, opts Options) []byte {
	var svgOpts []surface.SVGOption
	if opts.Background != "" {
		svgOpts = append(svgOpts, surface.WithSVGBackground(opts.Background))
	}
	s := surface.NewSVG(l.SurfaceWidth, l.SurfaceHeight, svgOpts...)
	chart.Render(s, l)
	return s.Bytes()
}

func renderPNG(l chart.Layout, opts Options) ([]byte, error) {
	var rasterOpts []surface.RasterOption
	if opts.Background != "" {
		bg, err := color.Parse(opts.Background)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "background")
		}
		rasterOpts = append(rasterOpts, surface.WithRasterBackground(bg))
	}
	w := int(math.Ceil(l.SurfaceWidth))
	h := int(math.Ceil(l.SurfaceHeight))
	r := surface.NewRaster(w, h, rasterOpts...)
	chart.Render(r, l)
	return r.PNG()
}

func renderJSON(l chart.Layout) ([]byte, error) {
	rec := surface.NewRecorder(l.SurfaceWidth, l.SurfaceHeight)
	chart.Render(rec, l)
	data, err := json.MarshalIndent(Document{Layout: l, Ops: rec.Ops()}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal document")
	}
	return data, nil
}

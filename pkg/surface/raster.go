package surface

import (
	"bytes"
	"fmt"
	"image"
	stdcolor "image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/sparkbar/pkg/color"
)

// RasterOption configures a raster surface.
type RasterOption func(*rasterConfig)

type rasterConfig struct {
	background stdcolor.Color
}

// WithRasterBackground clears the image to c before drawing.
// The default background is transparent.
func WithRasterBackground(c stdcolor.Color) RasterOption {
	return func(cfg *rasterConfig) { cfg.background = c }
}

// Raster is a surface backed by a gg drawing context.
//
// Fill colors are parsed when selected; the first parse failure or
// unsupported call is kept and reported by Err and EncodePNG.
type Raster struct {
	dc  *gg.Context
	err error
}

// NewRaster creates a raster surface of width x height pixels.
func NewRaster(width, height int, opts ...RasterOption) *Raster {
	cfg := rasterConfig{background: stdcolor.Transparent}
	for _, opt := range opts {
		opt(&cfg)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(cfg.background)
	dc.Clear()
	dc.SetColor(stdcolor.Black)
	return &Raster{dc: dc}
}

func (r *Raster) Width() float64  { return float64(r.dc.Width()) }
func (r *Raster) Height() float64 { return float64(r.dc.Height()) }

// SetTransform replaces the context matrix. gg exposes composition only, so
// the matrix is rebuilt from identity; skew is not supported.
func (r *Raster) SetTransform(a, b, c, d, e, f float64) {
	if b != 0 || c != 0 {
		r.setErr(fmt.Errorf("raster surface: skewed transforms are not supported"))
		return
	}
	r.dc.Identity()
	r.dc.Translate(e, f)
	r.dc.Scale(a, d)
}

func (r *Raster) Translate(dx, dy float64) {
	r.dc.Translate(dx, dy)
}

func (r *Raster) SetFillColor(css string) {
	c, err := color.Parse(css)
	if err != nil {
		r.setErr(fmt.Errorf("raster surface: %w", err))
		return
	}
	r.dc.SetColor(c)
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

// Image returns the underlying image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// Err returns the first error recorded while drawing.
func (r *Raster) Err() error { return r.err }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// PNG returns the encoded image.
func (r *Raster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Raster) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

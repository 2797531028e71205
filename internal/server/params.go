package server

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
	"github.com/matzehuels/sparkbar/pkg/widget"
)

// options builds pipeline options for one request from the server defaults
// and the query string.
func (s *Server) options(q url.Values, format string) (pipeline.Options, error) {
	d := s.cfg.Defaults
	opts := pipeline.Options{
		Type:            d.Type,
		Heights:         slices.Clone(d.Heights),
		MinimumBarWidth: d.MinimumBarWidth,
		BarGap:          d.BarGap,
		Colors:          d.Colors,
		Width:           d.Width,
		Height:          d.Height,
		Background:      d.Background,
		Formats:         []string{format},
		Logger:          s.logger,
	}

	if v := q.Get("type"); v != "" {
		opts.Type = v
	}
	if q.Has("heights") {
		heights, err := widget.ParseHeights(q.Get("heights"))
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Heights = heights
	}
	if len(opts.Heights) > s.cfg.MaxHeights {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "too many heights: %d (max %d)", len(opts.Heights), s.cfg.MaxHeights)
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"minBarWidth", &opts.MinimumBarWidth},
		{"barGap", &opts.BarGap},
	}
	for _, f := range floats {
		if !q.Has(f.name) {
			continue
		}
		v, err := strconv.ParseFloat(q.Get(f.name), 64)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", f.name, q.Get(f.name))
		}
		*f.dst = v
	}
	if opts.Width > s.cfg.MaxWidth || opts.Height > s.cfg.MaxHeight {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "surface %vx%v exceeds %vx%v", opts.Width, opts.Height, s.cfg.MaxWidth, s.cfg.MaxHeight)
	}

	if v := q.Get("minus"); v != "" {
		opts.Colors.Minus = v
	}
	if v := q.Get("zero"); v != "" {
		opts.Colors.Zero = v
	}
	if v := q.Get("plus"); v != "" {
		opts.Colors.Plus = v
	}
	if v := q.Get("background"); v != "" {
		opts.Background = v
	}
	return opts, nil
}

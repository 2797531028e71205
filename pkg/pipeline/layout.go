package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/errors"
)

// GenerateLayout validates the chart in opts and fits it onto a surface of
// opts.Width x opts.Height. It does not touch any cache.
func GenerateLayout(opts Options) (chart.Layout, error) {
	opts.SetDefaults()
	spec, err := opts.Spec()
	if err != nil {
		return chart.Layout{}, err
	}
	return chart.Compute(spec, opts.Width, opts.Height)
}

// MarshalLayout serializes a layout for caching and the json format.
func MarshalLayout(l chart.Layout) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout is the inverse of MarshalLayout.
func UnmarshalLayout(data []byte) (chart.Layout, error) {
	var l chart.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return chart.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal layout")
	}
	return l, nil
}

package chart

import (
	"math"
	"slices"

	"github.com/matzehuels/sparkbar/pkg/color"
	"github.com/matzehuels/sparkbar/pkg/errors"
)

// Limits on the numeric chart parameters.
const (
	MinBarWidthLimit = 3.0
	MinBarGapLimit   = 1.0
)

// Spec is the validated description of a chart.
type Spec struct {
	Type            ChartType
	Heights         []float64
	MinimumBarWidth float64
	BarGap          float64
	Colors          Palette
}

// NewSpec copies heights and validates the result. The returned Spec owns its
// heights; later changes to the caller's slice do not affect it.
func NewSpec(t ChartType, heights []float64, minimumBarWidth, barGap float64, colors Palette) (Spec, error) {
	s := Spec{
		Type:            t,
		Heights:         slices.Clone(heights),
		MinimumBarWidth: minimumBarWidth,
		BarGap:          barGap,
		Colors:          colors,
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate checks the spec's input contract. Checks run in a fixed order and
// the first failure is returned.
func (s Spec) Validate() error {
	if !s.Type.Valid() {
		return errors.New(errors.ErrCodeInvalidChartType, "invalid chart type: %d", int(s.Type))
	}
	if len(s.Heights) == 0 {
		return errors.New(errors.ErrCodeEmptyHeights, "bar heights is empty")
	}
	for i, h := range s.Heights {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "bar height %d is not a finite number: %v", i, h)
		}
	}
	// Negated comparisons reject NaN.
	if !(s.MinimumBarWidth >= MinBarWidthLimit) {
		return errors.New(errors.ErrCodeMinimumBarWidthTooSmall, "minimum bar width less than %v: %v", MinBarWidthLimit, s.MinimumBarWidth)
	}
	if !(s.BarGap >= MinBarGapLimit) {
		return errors.New(errors.ErrCodeBarGapTooSmall, "bar gap less than %v: %v", MinBarGapLimit, s.BarGap)
	}
	for _, c := range []struct {
		slot  errors.ColorSlot
		value string
	}{
		{errors.SlotMinus, s.Colors.Minus},
		{errors.SlotZero, s.Colors.Zero},
		{errors.SlotPlus, s.Colors.Plus},
	} {
		if !color.Valid(c.value) {
			return &errors.ColorError{Slot: c.slot, Value: c.value}
		}
	}
	return nil
}

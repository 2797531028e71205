package chart

import (
	"testing"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

func TestDeriveTransform(t *testing.T) {
	tests := []struct {
		name    string
		typ     ChartType
		h       float64
		heights []float64
		want    Transform
	}{
		{
			name:    "positive",
			typ:     Positive,
			h:       100,
			heights: []float64{5, 10, 20},
			want:    Transform{HorizontalScale: 1, VerticalScale: -5, VerticalTranslate: 100},
		},
		{
			name:    "negative",
			typ:     Negative,
			h:       100,
			heights: []float64{-5, -50, -10},
			want:    Transform{HorizontalScale: 1, VerticalScale: -2},
		},
		{
			name:    "dual uses larger magnitude",
			typ:     Dual,
			h:       100,
			heights: []float64{-40, 10, 20},
			want:    Transform{HorizontalScale: 1, VerticalScale: -5, VerticalTranslate: 50},
		},
		{
			name:    "dual positive extent",
			typ:     Dual,
			h:       60,
			heights: []float64{-1, 30},
			want:    Transform{HorizontalScale: 1, VerticalScale: -4, VerticalTranslate: 30},
		},
		{
			name:    "tri",
			typ:     Tri,
			h:       30,
			heights: []float64{-1, 0, 1},
			want:    Transform{HorizontalScale: 1, VerticalScale: -1, VerticalTranslate: 15},
		},
		{
			name:    "tri all zero is fine",
			typ:     Tri,
			h:       30,
			heights: []float64{0, 0},
			want:    Transform{HorizontalScale: 1, VerticalScale: -1, VerticalTranslate: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveTransform(tt.typ, tt.h, tt.heights)
			if err != nil {
				t.Fatalf("DeriveTransform() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DeriveTransform() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveTransformDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		typ     ChartType
		heights []float64
	}{
		{"positive max zero", Positive, []float64{0, 0, -3}},
		{"negative min zero", Negative, []float64{0, 4}},
		{"dual all zero", Dual, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveTransform(tt.typ, 100, tt.heights)
			if !errors.Is(err, errors.ErrCodeDegenerateScale) {
				t.Errorf("error = %v, want %v", err, errors.ErrCodeDegenerateScale)
			}
		})
	}
}

func TestDeriveTransformInvalidType(t *testing.T) {
	_, err := DeriveTransform(ChartType(0), 100, []float64{1})
	if !errors.Is(err, errors.ErrCodeInvalidChartType) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidChartType)
	}
}

func TestTransformApply(t *testing.T) {
	tr := Transform{HorizontalScale: 1, VerticalScale: -5, VerticalTranslate: 100}
	x, y := tr.Apply(3, 20)
	if x != 3 || y != 0 {
		t.Errorf("Apply(3, 20) = (%v, %v), want (3, 0)", x, y)
	}
}

package pipeline

import (
	"testing"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	opts := Options{}
	opts.SetDefaults()

	if opts.Type != DefaultType {
		t.Errorf("Type = %q, want %q", opts.Type, DefaultType)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want %vx%v", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.MinimumBarWidth != 3 || opts.BarGap != 1 {
		t.Errorf("bar params = %v/%v, want 3/1", opts.MinimumBarWidth, opts.BarGap)
	}
	if opts.Colors != DefaultColors {
		t.Errorf("Colors = %+v, want %+v", opts.Colors, DefaultColors)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	opts := Options{Type: "tri", Width: 10, BarGap: 4, Colors: chart.Palette{Plus: "#000"}}
	opts.SetDefaults()

	if opts.Type != "tri" || opts.Width != 10 || opts.BarGap != 4 {
		t.Errorf("explicit values overwritten: %+v", opts)
	}
	if opts.Colors.Plus != "#000" || opts.Colors.Minus != DefaultColors.Minus {
		t.Errorf("Colors = %+v", opts.Colors)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want errors.Code
	}{
		{"bad type", Options{Type: "pie", Heights: []float64{1}}, errors.ErrCodeInvalidChartType},
		{"no heights", Options{Type: "dual"}, errors.ErrCodeEmptyHeights},
		{"narrow bars", Options{Heights: []float64{1}, MinimumBarWidth: 2}, errors.ErrCodeMinimumBarWidthTooSmall},
		{"negative gap", Options{Heights: []float64{1}, BarGap: -1}, errors.ErrCodeBarGapTooSmall},
		{"bad plus color", Options{Heights: []float64{1}, Colors: chart.Palette{Plus: "green"}}, errors.ErrCodeInvalidColor},
		{"bad format", Options{Heights: []float64{1}, Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad background", Options{Heights: []float64{1}, Background: "white"}, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Type: "dual", Heights: []float64{1, -1}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	before := opts.Formats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
	if len(opts.Formats) != len(before) {
		t.Error("Formats changed on second call")
	}
}

func TestGenerateLayout(t *testing.T) {
	l, err := GenerateLayout(Options{Type: "positive", Heights: []float64{1, 2, 3}, Width: 60, Height: 30})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if l.BarWidth != 20 {
		t.Errorf("BarWidth = %v, want 20", l.BarWidth)
	}
	if l.Dropped != 1 || len(l.Bars) != 2 {
		t.Errorf("Dropped = %d, bars = %d, want 1 and 2", l.Dropped, len(l.Bars))
	}
	if l.Transform.VerticalScale != -10 {
		t.Errorf("VerticalScale = %v, want -10", l.Transform.VerticalScale)
	}
}

func TestLayoutJSONRoundTrip(t *testing.T) {
	l, err := GenerateLayout(Options{Type: "tri", Heights: []float64{-1, 0, 1}})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if got.Type != l.Type || len(got.Bars) != len(l.Bars) || got.Transform != l.Transform {
		t.Errorf("round trip = %+v, want %+v", got, l)
	}
	if _, err := UnmarshalLayout([]byte("{")); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("bad json err = %v, want INTERNAL_ERROR", err)
	}
}

package widget

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/surface"
)

func validConfig() Config {
	return Config{
		ChartType:       "dual",
		Heights:         []float64{4, -2, 0, 1},
		MinimumBarWidth: 3,
		BarGap:          1,
		Colors:          chart.Palette{Minus: "#d9534f", Zero: "#999", Plus: "#5cb85c"},
		Width:           40,
		Height:          20,
	}
}

func recorderFactory(made *[]*surface.Recorder) Option {
	return WithSurfaceFactory(func(w, h float64, _ string) chart.Surface {
		r := surface.NewRecorder(w, h)
		*made = append(*made, r)
		return r
	})
}

func TestNewRendersImmediately(t *testing.T) {
	var made []*surface.Recorder
	w := New(validConfig(), recorderFactory(&made))

	if len(made) != 1 {
		t.Fatalf("surfaces created = %d, want 1", len(made))
	}
	if w.Surface() != made[0] {
		t.Error("Surface() should return the rendered surface")
	}
	l, ok := w.Layout()
	if !ok {
		t.Fatal("Layout() reported no drawing")
	}
	// floor(40/4)=10 and 10*4+3 > 40, so the leftmost bar is dropped.
	if len(l.Bars) != 3 || l.BarWidth != 10 {
		t.Errorf("bars = %d, bar width = %v, want 3 and 10", len(l.Bars), l.BarWidth)
	}
	if rects := made[0].Rects(); len(rects) != 3 {
		t.Errorf("rects = %d, want 3", len(rects))
	}
}

func TestSetterRerenders(t *testing.T) {
	var made []*surface.Recorder
	w := New(validConfig(), recorderFactory(&made))

	if !w.SetChartType("tri") {
		t.Fatal("SetChartType(tri) should render")
	}
	if len(made) != 2 {
		t.Fatalf("surfaces created = %d, want 2", len(made))
	}
	l, _ := w.Layout()
	if l.Type != chart.Tri {
		t.Errorf("layout type = %v, want tri", l.Type)
	}
	if w.Config().ChartType != "tri" {
		t.Errorf("Config().ChartType = %q, want tri", w.Config().ChartType)
	}
}

func TestInvalidAttributesDegradeSilently(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Widget) bool
		code  errors.Code
	}{
		{"unknown type", func(w *Widget) bool { return w.SetChartType("pie") }, errors.ErrCodeInvalidChartType},
		{"no heights", func(w *Widget) bool { return w.SetHeights(nil) }, errors.ErrCodeEmptyHeights},
		{"narrow bars", func(w *Widget) bool { return w.SetMinimumBarWidth(2) }, errors.ErrCodeMinimumBarWidthTooSmall},
		{"no gap", func(w *Widget) bool { return w.SetBarGap(0) }, errors.ErrCodeBarGapTooSmall},
		{"bad minus", func(w *Widget) bool { return w.SetFillColorMinus("red") }, errors.ErrCodeInvalidColor},
		{"bad zero", func(w *Widget) bool { return w.SetFillColorZero("#12") }, errors.ErrCodeInvalidColor},
		{"bad plus", func(w *Widget) bool { return w.SetFillColorPlus("") }, errors.ErrCodeInvalidColor},
		{"zero width", func(w *Widget) bool { return w.SetSize(0, 20) }, errors.ErrCodeInvalidInput},
		{"too narrow", func(w *Widget) bool { return w.SetSize(2, 20) }, errors.ErrCodeSurfaceTooNarrow},
		{"bad attr", func(w *Widget) bool { return w.SetHeightsAttr("1,x") }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			var made []*surface.Recorder
			w := New(validConfig(), recorderFactory(&made), WithLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})))
			before := w.Surface()

			if tt.apply(w) {
				t.Fatal("setter reported a render for invalid attributes")
			}
			if w.Surface() != before {
				t.Error("last good surface should be kept")
			}
			if !strings.Contains(buf.String(), string(tt.code)) {
				t.Errorf("log %q does not mention %s", buf.String(), tt.code)
			}
			// Only the initial render allocated a surface, except when
			// the chart failed while drawing.
			if tt.code != errors.ErrCodeSurfaceTooNarrow && len(made) != 1 {
				t.Errorf("surfaces created = %d, want 1", len(made))
			}
		})
	}
}

func TestInvalidInitialConfig(t *testing.T) {
	w := New(Config{ChartType: "dual"})
	if w.Surface() != nil {
		t.Error("Surface() should be nil before any successful render")
	}
	if _, ok := w.Layout(); ok {
		t.Error("Layout() should report no drawing")
	}
}

func TestRecoversAfterFix(t *testing.T) {
	cfg := validConfig()
	cfg.BarGap = 0
	w := New(cfg)
	if w.Surface() != nil {
		t.Fatal("invalid gap should not render")
	}
	if !w.SetBarGap(2) {
		t.Fatal("fixing the gap should render")
	}
	if _, ok := w.Surface().(*surface.SVG); !ok {
		t.Errorf("default surface = %T, want *surface.SVG", w.Surface())
	}
}

func TestClassNameReachesSVG(t *testing.T) {
	w := New(validConfig())
	w.SetClassName("spark")
	svg := w.Surface().(*surface.SVG)
	if !strings.Contains(string(svg.Bytes()), `class="spark"`) {
		t.Error("class attribute missing from svg")
	}
}

func TestConfigIsCopied(t *testing.T) {
	cfg := validConfig()
	w := New(cfg)
	cfg.Heights[0] = 99

	got := w.Config()
	if got.Heights[0] != 4 {
		t.Errorf("widget heights changed through caller slice: %v", got.Heights)
	}
	got.Heights[1] = 99
	if w.Config().Heights[1] != -2 {
		t.Error("Config() should return a copy")
	}
}

func TestParseHeights(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1,2,-3", []float64{1, 2, -3}, false},
		{" 1 , 2.5 ,-3 ", []float64{1, 2.5, -3}, false},
		{"[1, 2, -3]", []float64{1, 2, -3}, false},
		{"", nil, false},
		{"   ", nil, false},
		{"1,,2", nil, true},
		{"a", nil, true},
		{"[1, \"x\"]", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseHeights(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHeights(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseHeights(%q) code = %s, want INVALID_INPUT", tt.in, errors.GetCode(err))
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseHeights(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

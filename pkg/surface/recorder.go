package surface

import "slices"

// OpKind identifies a recorded surface call.
type OpKind string

// Recorded operations.
const (
	OpSetTransform OpKind = "set_transform"
	OpTranslate    OpKind = "translate"
	OpSetFillColor OpKind = "set_fill_color"
	OpFillRect     OpKind = "fill_rect"
)

// Op is one recorded surface call.
type Op struct {
	Kind  OpKind    `json:"op"`
	Args  []float64 `json:"args,omitempty"`
	Color string    `json:"color,omitempty"`
}

// Recorder is an in-memory surface that records calls instead of drawing.
// It also tracks the current transform so each filled rectangle is
// available in device space.
type Recorder struct {
	width, height float64
	matrix        Matrix
	fill          string
	ops           []Op
	rects         []Rect
}

// NewRecorder creates a recorder reporting the given dimensions.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height, matrix: Identity()}
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) SetTransform(a, b, c, d, e, f float64) {
	r.matrix = Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
	r.ops = append(r.ops, Op{Kind: OpSetTransform, Args: []float64{a, b, c, d, e, f}})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.matrix = r.matrix.Translate(dx, dy)
	r.ops = append(r.ops, Op{Kind: OpTranslate, Args: []float64{dx, dy}})
}

func (r *Recorder) SetFillColor(css string) {
	r.fill = css
	r.ops = append(r.ops, Op{Kind: OpSetFillColor, Color: css})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	rect := r.matrix.DeviceRect(x, y, w, h)
	rect.Color = r.fill
	r.rects = append(r.rects, rect)
	r.ops = append(r.ops, Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Color: r.fill})
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op { return slices.Clone(r.ops) }

// Rects returns the filled rectangles in device space.
func (r *Recorder) Rects() []Rect { return slices.Clone(r.rects) }

// Matrix returns the current transform.
func (r *Recorder) Matrix() Matrix { return r.matrix }

// Touched reports whether any call has been recorded.
func (r *Recorder) Touched() bool { return len(r.ops) > 0 }

// Reset clears the log and restores the identity transform.
func (r *Recorder) Reset() {
	r.ops = nil
	r.rects = nil
	r.fill = ""
	r.matrix = Identity()
}

package surface

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
)

// SVGOption configures an SVG surface.
type SVGOption func(*SVG)

// WithSVGBackground fills the whole viewport with css before any bar.
func WithSVGBackground(css string) SVGOption { return func(s *SVG) { s.background = css } }

// WithSVGClass sets the class attribute of the root element.
func WithSVGClass(class string) SVGOption { return func(s *SVG) { s.class = class } }

// SVG is a surface that serializes each filled rectangle as an SVG <rect>
// carrying the transform in effect when it was drawn.
type SVG struct {
	width, height float64
	background    string
	class         string
	matrix        Matrix
	fill          string
	body          bytes.Buffer
}

// NewSVG creates an SVG surface of the given size.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{width: width, height: height, matrix: Identity(), fill: "#000"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) Width() float64  { return s.width }
func (s *SVG) Height() float64 { return s.height }

func (s *SVG) SetTransform(a, b, c, d, e, f float64) {
	s.matrix = Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

func (s *SVG) Translate(dx, dy float64) {
	s.matrix = s.matrix.Translate(dx, dy)
}

func (s *SVG) SetFillColor(css string) { s.fill = css }

// FillRect writes a rect element. SVG forbids negative sizes, so the local
// rectangle is normalized first; the transform still flips it as needed.
func (s *SVG) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	m := s.matrix
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" transform="matrix(%s %s %s %s %s %s)"/>`+"\n",
		num(x), num(y), num(w), num(h), html.EscapeString(s.fill),
		num(m.A), num(m.B), num(m.C), num(m.D), num(m.E), num(m.F))
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		num(s.width), num(s.height), num(s.width), num(s.height))
	if s.class != "" {
		fmt.Fprintf(&buf, ` class="%s"`, html.EscapeString(s.class))
	}
	buf.WriteString(">\n")
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

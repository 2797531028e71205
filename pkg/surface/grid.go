package surface

import "math"

// Grid is a coarse surface made of character cells, one unit per cell.
// A cell takes the fill color of the last rectangle covering its center.
// It backs the terminal preview.
type Grid struct {
	cols, rows int
	matrix     Matrix
	fill       string
	cells      []string
}

// NewGrid creates an empty grid of cols x rows cells.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{cols: cols, rows: rows, matrix: Identity(), cells: make([]string, cols*rows)}
}

func (g *Grid) Width() float64  { return float64(g.cols) }
func (g *Grid) Height() float64 { return float64(g.rows) }

func (g *Grid) SetTransform(a, b, c, d, e, f float64) {
	g.matrix = Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

func (g *Grid) Translate(dx, dy float64) {
	g.matrix = g.matrix.Translate(dx, dy)
}

func (g *Grid) SetFillColor(css string) { g.fill = css }

func (g *Grid) FillRect(x, y, w, h float64) {
	r := g.matrix.DeviceRect(x, y, w, h)
	c0 := max(0, int(math.Ceil(r.X-0.5)))
	c1 := min(g.cols, int(math.Ceil(r.X+r.Width-0.5)))
	r0 := max(0, int(math.Ceil(r.Y-0.5)))
	r1 := min(g.rows, int(math.Ceil(r.Y+r.Height-0.5)))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			g.cells[row*g.cols+col] = g.fill
		}
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// At returns the color of a cell, or "" when nothing covers it or the cell
// is out of range.
func (g *Grid) At(col, row int) string {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return ""
	}
	return g.cells[row*g.cols+col]
}

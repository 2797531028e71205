package surface

import "math"

// Matrix is a 2D affine transform in canvas order:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns m composed with a translation by (dx, dy) in m's local
// space.
func (m Matrix) Translate(dx, dy float64) Matrix {
	m.E += m.A*dx + m.C*dy
	m.F += m.B*dx + m.D*dy
	return m
}

// Apply maps a local point to device space.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Rect is an axis-aligned rectangle in device space with non-negative size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// DeviceRect maps a local rectangle through m and normalizes it. Skewed
// matrices yield the bounding box of the mapped corners.
func (m Matrix) DeviceRect(x, y, w, h float64) Rect {
	x0, y0 := m.Apply(x, y)
	x1, y1 := m.Apply(x+w, y+h)
	x2, y2 := m.Apply(x+w, y)
	x3, y3 := m.Apply(x, y+h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Package core provides fundamental types and utilities shared by the runner
// simulation and its frontends. It has no external dependencies (no Bubble Tea,
// no Ebiten) so the simulation stays pure and testable.
package core

// Rect is an integer rectangle on the terminal cell grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in world units (y grows downward).
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// InsetX shrinks the box by dx on both horizontal sides.
func (r RectF) InsetX(dx float64) RectF {
	w := r.W - 2*dx
	if w < 0 {
		w = 0
	}
	return RectF{X: r.X + dx, Y: r.Y, W: w, H: r.H}
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

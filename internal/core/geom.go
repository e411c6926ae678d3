// Package core provides the drawable-entity model, the window compositor and
// the display contracts shared by the engine and the display backends.
// It contains no external dependencies (especially no Bubble Tea or tcell) so
// that everything built on it stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in character cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r, in r's local
// coordinates. Odd remainders round toward the top-left.
func (r Rect) Centered(w, h int) Rect {
	return NewRect((r.W-w)>>1, (r.H-h)>>1, w, h)
}

// Round converts a fractional cell coordinate to the nearest cell.
func Round(v float64) int {
	return int(math.Round(v))
}

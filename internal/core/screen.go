package core

import (
	"strings"
	"sync/atomic"
)

// Cell is a single screen position: the glyph and its derived color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer that implements Sink.
// Display backends use it as the staging canvas behind their own output,
// and tests use it directly to inspect what a Window flushed.
type Screen struct {
	width  int
	height int
	cells  [][]rune
	shows  atomic.Int64
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]rune, height)
	for y := range s.cells {
		s.cells[y] = make([]rune, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.Bounds().Contains(x, y) {
		return ' '
	}
	return s.cells[y][x]
}

// GetCell returns the rune at the given position together with its color.
func (s *Screen) GetCell(x, y int) Cell {
	r := s.Get(x, y)
	return Cell{Rune: r, Color: ColorOf(r)}
}

// SetRow implements Sink.
func (s *Screen) SetRow(row, col int, cells []byte) {
	for i, c := range cells {
		s.Set(col+i, row, rune(c))
	}
}

// Show implements Sink. A Screen has nothing to present; it only counts
// frames so callers can tell how many were flushed.
func (s *Screen) Show() {
	s.shows.Add(1)
}

// Shows returns the number of Show calls so far.
func (s *Screen) Shows() int64 {
	return s.shows.Load()
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}

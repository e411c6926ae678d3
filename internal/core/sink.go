package core

// Sink is the display collaborator a Window flushes into.
// Rows are addressed in absolute screen coordinates; a frame becomes visible
// only after Show. Implementations must tolerate rows that extend past their
// own bounds by clipping.
type Sink interface {
	// SetRow writes cells starting at (col, row). The slice is only valid
	// for the duration of the call.
	SetRow(row, col int, cells []byte)

	// Show presents everything written since the previous Show.
	Show()
}

// Present sends a row-major w×h buffer to s with its top-left corner at
// (col, row), one row at a time, then asks the sink to show it.
func Present(s Sink, row, col, w, h int, buf []byte) {
	for y := range h {
		s.SetRow(row+y, col, buf[y*w:(y+1)*w])
	}
	s.Show()
}

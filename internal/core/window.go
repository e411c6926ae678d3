package core

// Window composites a bordered background and any number of Drawables into
// a framebuffer the size of the background, then flushes it to a Sink.
//
// The background art carries a one-cell border, so entity blits and text
// never touch the outermost row or column.
type Window struct {
	bg     *Sprite
	pixels []byte
}

// NewWindow creates a window whose origin and size are those of bg.
func NewWindow(bg *Sprite) *Window {
	w, h := bg.Size()
	return &Window{
		bg:     bg,
		pixels: make([]byte, w*h),
	}
}

// Bounds returns the window's screen origin and size.
func (w *Window) Bounds() Rect {
	x, y := w.bg.Position()
	bw, bh := w.bg.Size()
	return NewRect(Round(x), Round(y), bw, bh)
}

// Width returns the window width in cells.
func (w *Window) Width() int {
	bw, _ := w.bg.Size()
	return bw
}

// Height returns the window height in cells.
func (w *Window) Height() int {
	_, bh := w.bg.Size()
	return bh
}

// At returns the framebuffer cell at window-local (col, row), or 0 outside.
func (w *Window) At(col, row int) byte {
	bw, bh := w.bg.Size()
	if col < 0 || col >= bw || row < 0 || row >= bh {
		return 0
	}
	return w.pixels[row*bw+col]
}

// DrawBackground copies the background into the framebuffer.
func (w *Window) DrawBackground() {
	copy(w.pixels, w.bg.Skin())
}

// Draw blits d at its own position.
func (w *Window) Draw(d Drawable) {
	x, y := d.Position()
	w.DrawAt(d, x, y)
}

// DrawAt blits d's current skin with its top-left corner at window-local
// (x, y), clipped to the area inside the border.
func (w *Window) DrawAt(d Drawable, x, y float64) {
	bw, bh := w.bg.Size()
	dw, dh := d.Size()
	skin := d.Skin()
	ix, iy := Round(x), Round(y)

	xmin := max(0, 1-ix)
	xmax := min(dw, bw-ix-1)
	ymin := max(0, 1-iy)
	ymax := min(dh, bh-iy-1)
	if xmin >= xmax {
		return
	}

	for row := ymin; row < ymax; row++ {
		dst := (row+iy)*bw + ix
		src := row * dw
		copy(w.pixels[dst+xmin:dst+xmax], skin[src+xmin:src+xmax])
	}
}

// DrawText writes text on row starting at col, clipped inside the border.
// It stops at the end of text or at a NUL byte, and does nothing on the top
// two rows or the bottom border row.
func (w *Window) DrawText(col, row int, text string) {
	bw, bh := w.bg.Size()
	if row <= 1 || row >= bh-1 {
		return
	}

	for i := max(0, 1-col); i < bw-col-1; i++ {
		if i >= len(text) || text[i] == 0 {
			return
		}
		w.pixels[row*bw+col+i] = text[i]
	}
}

// Flush sends the framebuffer to s at the window origin and presents it.
func (w *Window) Flush(s Sink) {
	b := w.Bounds()
	Present(s, b.Y, b.X, b.W, b.H, w.pixels)
}

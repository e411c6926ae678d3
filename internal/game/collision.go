package game

import (
	"iter"

	"github.com/vovakirdan/dovefly/internal/core"
)

// Collides reports whether bird touches the field border or leaves the gap
// of any barrier it overlaps horizontally. Positions are compared unrounded.
func Collides(field core.Rect, bird core.Drawable, barriers iter.Seq[*Barrier]) bool {
	x, y := bird.Position()
	w, h := bird.Size()

	if y <= 0 || y+float64(h) >= float64(field.H-1) {
		return true
	}

	for b := range barriers {
		bw, _ := b.Size()
		if b.X > x+float64(w) || b.X+float64(bw) < x {
			continue
		}
		top, bottom := b.Gap()
		if y+float64(h) >= bottom || y <= top {
			return true
		}
	}
	return false
}

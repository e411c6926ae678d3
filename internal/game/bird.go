package game

import (
	"github.com/vovakirdan/dovefly/internal/core"
)

// Frame indices of the bird animation.
const (
	FrameFalling = 0
	FrameRising  = 1
)

// Bird is the player entity: an animation plus a vertical velocity.
// Positive velocity moves the bird down.
type Bird struct {
	*core.Anime
	V float64
}

// NewBird wraps an animation with at least two frames.
func NewBird(a *core.Anime) *Bird {
	b := &Bird{Anime: a}
	b.SetFrame(FrameRising)
	return b
}

// Advance moves the bird by its velocity, then applies gravity.
// Gravity never pushes the velocity past MaxV; upward impulses are not clamped.
func (b *Bird) Advance() {
	b.Y += b.V
	if b.V < MaxV {
		b.V = min(b.V+Gravity, MaxV)
	}

	if b.V > 0 {
		b.SetFrame(FrameFalling)
	} else {
		b.SetFrame(FrameRising)
	}
}

// Flap gives the bird its full upward velocity.
func (b *Bird) Flap() {
	b.V = MinV
}

// Reset puts the bird at (x, y) at rest.
func (b *Bird) Reset(x, y float64) {
	b.MoveTo(x, y)
	b.V = 0
	b.SetFrame(FrameRising)
}

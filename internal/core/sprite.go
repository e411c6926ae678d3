package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSkinSize is returned when a character buffer does not match w·h.
	ErrSkinSize = errors.New("core: skin size does not match dimensions")

	// ErrNoFrames is returned when an animation is created without frames.
	ErrNoFrames = errors.New("core: animation needs at least one frame")
)

// Drawable is anything a Window can composite: a positioned, fixed-size
// rectangle with a row-major character buffer of exactly w·h cells.
type Drawable interface {
	Position() (x, y float64)
	Size() (w, h int)
	Skin() []byte
}

// Sprite is a single-frame Drawable. Position may be fractional; the
// compositor rounds it when blitting.
type Sprite struct {
	X, Y float64
	w, h int
	skin []byte
}

// NewSprite creates a sprite at (x, y). The skin is used as-is, not copied,
// so several sprites may share one buffer.
func NewSprite(x, y float64, w, h int, skin []byte) (*Sprite, error) {
	if w <= 0 || h <= 0 || len(skin) != w*h {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrSkinSize, w, h, len(skin))
	}
	return &Sprite{X: x, Y: y, w: w, h: h, skin: skin}, nil
}

// Position implements Drawable.
func (s *Sprite) Position() (float64, float64) {
	return s.X, s.Y
}

// Size implements Drawable.
func (s *Sprite) Size() (int, int) {
	return s.w, s.h
}

// Skin implements Drawable.
func (s *Sprite) Skin() []byte {
	return s.skin
}

// MoveTo sets the sprite position.
func (s *Sprite) MoveTo(x, y float64) {
	s.X, s.Y = x, y
}

// Anime is a Drawable with several frames of the same size.
// It has no clock of its own: the owner picks the frame every tick.
type Anime struct {
	Sprite
	frames [][]byte
	cur    int
}

// NewAnime creates an animation from frames, all of which must hold w·h cells.
// The first frame is current.
func NewAnime(x, y float64, w, h int, frames [][]byte) (*Anime, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	for i, f := range frames {
		if w <= 0 || h <= 0 || len(f) != w*h {
			return nil, fmt.Errorf("%w: frame %d is %d cells, want %dx%d", ErrSkinSize, i, len(f), w, h)
		}
	}
	return &Anime{
		Sprite: Sprite{X: x, Y: y, w: w, h: h, skin: frames[0]},
		frames: frames,
	}, nil
}

// Frames returns the number of frames.
func (a *Anime) Frames() int {
	return len(a.frames)
}

// Frame returns the current frame index.
func (a *Anime) Frame() int {
	return a.cur
}

// SetFrame selects the current frame. Out-of-range indices are ignored so
// the current index always stays valid.
func (a *Anime) SetFrame(i int) {
	if i < 0 || i >= len(a.frames) {
		return
	}
	a.cur = i
	a.skin = a.frames[i]
}

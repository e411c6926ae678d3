package tui

import (
	"sync"

	"github.com/vovakirdan/dovefly/internal/core"
)

// Sink stages rows in a Screen and publishes a rendered frame on every Show.
// Only the newest frame is kept: a slow view skips frames instead of
// stalling the simulation.
type Sink struct {
	mu     sync.Mutex
	screen *core.Screen
	color  bool
	frames chan string
	closed bool
}

// NewSink creates a sink for a w×h game area.
func NewSink(w, h int, color bool) *Sink {
	return &Sink{
		screen: core.NewScreen(w, h),
		color:  color,
		frames: make(chan string, 1),
	}
}

// Size returns the game area.
func (s *Sink) Size() (w, h int) {
	return s.screen.Width(), s.screen.Height()
}

// SetRow implements core.Sink.
func (s *Sink) SetRow(row, col int, cells []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.screen.SetRow(row, col, cells)
}

// Show implements core.Sink.
func (s *Sink) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	frame := RenderScreen(s.screen, s.color)

	select {
	case s.frames <- frame:
	default:
		// Channel full, drop oldest and retry
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- frame:
		default:
		}
	}
}

// Frames delivers rendered frames. It is closed by Close.
func (s *Sink) Frames() <-chan string {
	return s.frames
}

// Close stops publishing frames. Safe to call more than once.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.frames)
	}
}

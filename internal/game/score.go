package game

import (
	"fmt"
	"math"
	"sync/atomic"
)

// atomicFloat is a float64 updated with compare-and-swap on its bits.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *atomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *atomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		v := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Score holds the session counters. The simulation goroutine writes points,
// frames and distance; the FPS sampler writes fps and wraps frames; views
// read everything. Every field is atomic so no lock is needed.
type Score struct {
	points   atomic.Int64
	over     atomic.Bool
	frames   atomic.Int64
	fps      atomic.Int64
	distance atomicFloat
	resets   atomic.Int64
}

// Snapshot is a point-in-time copy of Score.
type Snapshot struct {
	Points   int64
	Over     bool
	Frames   int64
	FPS      int64
	Distance float64
}

// String formats the snapshot for logs.
func (s Snapshot) String() string {
	return fmt.Sprintf("score=%d distance=%.1fm frames=%d", s.Points, s.Distance, s.Frames)
}

// Reset zeroes every counter, the measured FPS included. The sampler
// restarts its baseline on its next sample.
func (s *Score) Reset() {
	s.resets.Add(1)
	s.points.Store(0)
	s.over.Store(false)
	s.frames.Store(0)
	s.fps.Store(0)
	s.distance.Store(0)
}

// AddPoints adds n passed barriers to the score.
func (s *Score) AddPoints(n int) {
	if n > 0 {
		s.points.Add(int64(n))
	}
}

// Points returns the number of barriers passed this round.
func (s *Score) Points() int64 {
	return s.points.Load()
}

// SetOver marks the round as finished.
func (s *Score) SetOver() {
	s.over.Store(true)
}

// Over reports whether the round has finished.
func (s *Score) Over() bool {
	return s.over.Load()
}

// Tick records one simulated frame covering dist.
func (s *Score) Tick(dist float64) {
	s.frames.Add(1)
	s.distance.Add(dist)
}

// Frames returns the elapsed-frame counter.
func (s *Score) Frames() int64 {
	return s.frames.Load()
}

// FPS returns the last measured frame rate.
func (s *Score) FPS() int64 {
	return s.fps.Load()
}

// Distance returns the distance flown this round.
func (s *Score) Distance() float64 {
	return s.distance.Load()
}

// Snapshot copies all counters.
func (s *Score) Snapshot() Snapshot {
	return Snapshot{
		Points:   s.points.Load(),
		Over:     s.over.Load(),
		Frames:   s.frames.Load(),
		FPS:      s.fps.Load(),
		Distance: s.distance.Load(),
	}
}

// fpsCounter turns the frame counter into a rate. sample is called once per
// period by a single goroutine.
type fpsCounter struct {
	score  *Score
	base   int64
	resets int64
}

func (c *fpsCounter) sample() int64 {
	resets := c.score.resets.Load()
	now := c.score.frames.Load()
	fps := now - c.base
	if resets != c.resets || fps < 0 {
		// A new round started since the last sample
		c.resets = resets
		fps = now
	}
	c.score.fps.Store(fps)

	if now > FrameWrap {
		now = c.wrap(now)
	}
	c.base = now
	return fps
}

// wrap subtracts n from frames unless a reset got there first.
func (c *fpsCounter) wrap(n int64) int64 {
	for {
		cur := c.score.frames.Load()
		if cur < n {
			return cur
		}
		if c.score.frames.CompareAndSwap(cur, cur-n) {
			return cur - n
		}
	}
}

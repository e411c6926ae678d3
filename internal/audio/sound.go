// Package audio plays DoveFly's sound effects through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = -1.5 // base-2 attenuation applied to every effect
)

// Sounds mixes short effects onto the speaker. The zero value is silent
// until Init succeeds. Play calls never block the caller for longer than
// the speaker lock.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

// New creates an uninitialized sound player. Effects that cannot be built
// are reported to logger; nil discards them.
func New(logger *log.Logger) *Sounds {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sounds{mixer: &beep.Mixer{}, log: logger}
}

// Init opens the speaker. Calling it again is a no-op.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences every effect and releases the speaker.
func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Flap plays a short high chirp.
func (s *Sounds) Flap() {
	s.play(flapEffect)
}

// Score plays a rising two-note blip.
func (s *Sounds) Score() {
	s.play(scoreEffect)
}

// Crash plays a decaying noise burst.
func (s *Sounds) Crash() {
	s.play(crashEffect)
}

func (s *Sounds) play(effect func() (beep.Streamer, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := s.build(effect)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(&effects.Volume{Streamer: st, Base: 2, Volume: volume})
	speaker.Unlock()
}

// build constructs an effect, logging and skipping it on failure.
func (s *Sounds) build(effect func() (beep.Streamer, error)) beep.Streamer {
	st, err := effect()
	if err != nil {
		s.log.Warn("sound effect skipped", "error", err)
		return nil
	}
	return st
}

// tone returns d of a sine wave at freq.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

func flapEffect() (beep.Streamer, error) {
	return tone(880, 40*time.Millisecond)
}

func scoreEffect() (beep.Streamer, error) {
	low, err := tone(660, 60*time.Millisecond)
	if err != nil {
		return nil, err
	}
	high, err := tone(990, 90*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func crashEffect() (beep.Streamer, error) {
	return newCrashGenerator(sampleRate, 400*time.Millisecond, 1), nil
}

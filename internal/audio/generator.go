package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// crashGenerator produces a low rumble mixed with noise that fades out
// linearly over its length.
type crashGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
}

func newCrashGenerator(sr beep.SampleRate, d time.Duration, seed int64) *crashGenerator {
	return &crashGenerator{
		sr:      sr,
		samples: sr.N(d),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Stream implements beep.Streamer.
func (g *crashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.samples)

		rumble := math.Sin(2 * math.Pi * 70 * t)
		noise := g.rng.Float64()*2 - 1
		v := envelope * (0.6*rumble + 0.4*noise) * 0.5

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *crashGenerator) Err() error {
	return nil
}

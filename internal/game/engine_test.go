package game

import (
	"context"
	"math"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/dovefly/internal/core"
)

type countingSounds struct {
	flaps, scores, crashes atomic.Int64
}

func (s *countingSounds) Flap()  { s.flaps.Add(1) }
func (s *countingSounds) Score() { s.scores.Add(1) }
func (s *countingSounds) Crash() { s.crashes.Add(1) }

const overText = "G A M E   O V E R"

func newTestEngine(t *testing.T, keys core.KeySource, opts Options) (*Engine, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(ScreenW, ScreenH)
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return New(loadTestScene(t), screen, keys, opts), screen
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestEngineNewRoundClearsMeasuredFPS(t *testing.T) {
	e, _ := newTestEngine(t, core.NewKeyQueue(1), Options{})

	e.NewRound()
	for range 100 {
		e.Step()
	}
	c := fpsCounter{score: &e.score}
	if fps := c.sample(); fps == 0 {
		t.Fatal("sample() = 0, expected frames from the round")
	}

	e.NewRound()
	e.NewRound()
	if s := e.Score(); s != (Snapshot{}) {
		t.Errorf("Score() after NewRound = %+v, expected zero", s)
	}
}

func TestEngineNewRound(t *testing.T) {
	e, screen := newTestEngine(t, core.NewKeyQueue(1), Options{})

	e.NewRound()
	for range 100 {
		e.Step()
	}
	e.NewRound()
	e.NewRound()

	if s := e.Score(); s != (Snapshot{}) {
		t.Errorf("Score() after NewRound = %+v, expected zero", s)
	}
	if e.Barriers().Len() != 0 || e.Barriers().Pooled() != e.Barriers().Allocated() {
		t.Errorf("barriers: active %d pooled %d allocated %d", e.Barriers().Len(), e.Barriers().Pooled(), e.Barriers().Allocated())
	}
	if e.Phase() != PhaseAwaitingStart {
		t.Errorf("Phase() = %v, expected %v", e.Phase(), PhaseAwaitingStart)
	}
	if !strings.Contains(screen.String(), "press SPACE to start") {
		t.Error("start banner not drawn")
	}
	if x, y := e.Bird().Position(); x != BirdX || y != BirdY || e.Bird().V != 0 {
		t.Errorf("bird at (%v, %v) v=%v after NewRound", x, y, e.Bird().V)
	}
}

func TestEngineStepUntilCrash(t *testing.T) {
	sounds := &countingSounds{}
	e, screen := newTestEngine(t, core.NewKeyQueue(1), Options{Sounds: sounds})
	e.NewRound()

	ticks := 0
	for !e.Step() {
		ticks++
		if ticks > 1000 {
			t.Fatal("bird never crashed without flapping")
		}
		if e.Phase() == PhaseGameOver {
			t.Fatal("phase changed before crash")
		}
	}

	if e.Phase() != PhaseGameOver || !e.Score().Over {
		t.Errorf("after crash: phase %v over %v", e.Phase(), e.Score().Over)
	}
	if e.Score().Frames != int64(ticks+1) {
		t.Errorf("Frames = %d, expected %d", e.Score().Frames, ticks+1)
	}
	if !strings.Contains(screen.String(), overText) {
		t.Error("game over banner not drawn")
	}
	if !strings.Contains(screen.Row(PanelY+panelScoreRow), "Score:    0") {
		t.Errorf("panel score row = %q", screen.Row(PanelY+panelScoreRow))
	}
	if sounds.crashes.Load() != 1 {
		t.Errorf("crash sounds = %d, expected 1", sounds.crashes.Load())
	}
}

func TestEngineFlap(t *testing.T) {
	sounds := &countingSounds{}
	e, _ := newTestEngine(t, core.NewKeyQueue(1), Options{Sounds: sounds})
	e.NewRound()

	e.Flap()
	e.Flap() // coalesced into the first
	e.Step()

	if got, want := e.Bird().Y, BirdY+MinV; math.Abs(got-want) > 1e-9 {
		t.Errorf("Y = %v, expected %v", got, want)
	}
	if got, want := e.Bird().V, MinV+Gravity; math.Abs(got-want) > 1e-9 {
		t.Errorf("V = %v, expected %v", got, want)
	}

	e.Step()
	if sounds.flaps.Load() != 1 {
		t.Errorf("flap sounds = %d, expected 1", sounds.flaps.Load())
	}
}

func TestEngineRun(t *testing.T) {
	keys := core.NewKeyQueue(8)
	e, screen := newTestEngine(t, keys, Options{TickRate: 1000, SamplePeriod: 10 * time.Millisecond})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Run(context.Background())
	}()

	waitFor(t, "first round", func() bool { return e.Rounds() == 1 })
	keys.Push(core.ActionFlap)
	waitFor(t, "game over", func() bool { return e.Phase() == PhaseGameOver })

	keys.Push(core.ActionFlap)
	waitFor(t, "second round", func() bool { return e.Rounds() == 2 && e.Phase() == PhaseAwaitingStart })
	if s := e.Score(); s.Points != 0 || s.Frames != 0 || s.Over {
		t.Errorf("Score() on restart = %+v", s)
	}

	keys.Push(core.ActionQuit)
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit")
	}

	if !strings.Contains(screen.String(), "press SPACE to start") {
		t.Error("start banner not shown after restart")
	}
}

func TestEngineRunEndsWithInput(t *testing.T) {
	tests := []struct {
		name string
		stop func(q *core.KeyQueue, cancel context.CancelFunc)
	}{
		{"input closed", func(q *core.KeyQueue, _ context.CancelFunc) { q.Close() }},
		{"context cancelled", func(_ *core.KeyQueue, cancel context.CancelFunc) { cancel() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := core.NewKeyQueue(4)
			e, _ := newTestEngine(t, keys, Options{TickRate: 1000})
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Run(ctx)
			}()

			keys.Push(core.ActionFlap)
			waitFor(t, "playing", func() bool { return e.Phase() != PhaseAwaitingStart })
			tc.stop(keys, cancel)

			select {
			case err := <-errCh:
				if err != nil {
					t.Errorf("Run() error = %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not return")
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseAwaitingStart, "awaiting-start"},
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game-over"},
		{Phase(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.phase, got, tc.expected)
		}
	}
}

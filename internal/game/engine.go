package game

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dovefly/internal/core"
)

// Phase is the round state.
type Phase int32

const (
	PhaseAwaitingStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Options tune an Engine. Zero values select the defaults.
type Options struct {
	Seed         int64         // Barrier stream seed, 0 means time-based
	TickRate     int           // Ticks per second, default TickRate
	SamplePeriod time.Duration // FPS sampling period, default 1s
	Sounds       Sounds        // Default Silent()
	Logger       *log.Logger   // Default discards
}

// Engine runs DoveFly rounds against a display.
//
// Three goroutines cooperate while Run is active: the caller's goroutine
// reads keys and drives the round state machine, one simulation goroutine
// per round ticks the world, and an FPS sampler lives for the whole run.
// The bird, barriers and windows are only touched by the simulation
// goroutine while a round is playing and by the control goroutine
// otherwise; the next round is never reset before the previous simulation
// goroutine has exited.
type Engine struct {
	scene    *Scene
	sink     core.Sink
	keys     core.KeySource
	field    core.Rect
	bird     *Bird
	barriers *BarrierManager
	score    Score
	phase    atomic.Int32
	rounds   atomic.Int64
	flaps    chan struct{}

	tickRate     int
	samplePeriod time.Duration
	sounds       Sounds
	log          *log.Logger
}

// New creates an engine for scene drawing to sink and reading keys.
func New(scene *Scene, sink core.Sink, keys core.KeySource, opts Options) *Engine {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = TickRate
	}
	if opts.SamplePeriod <= 0 {
		opts.SamplePeriod = time.Second
	}
	if opts.Sounds == nil {
		opts.Sounds = Silent()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	field := scene.Valley.Bounds()
	return &Engine{
		scene:        scene,
		sink:         sink,
		keys:         keys,
		field:        field,
		bird:         scene.Bird,
		barriers:     NewBarrierManager(scene.Barrier, core.NewRect(0, 0, field.W, field.H), opts.Seed),
		flaps:        make(chan struct{}, 1),
		tickRate:     opts.TickRate,
		samplePeriod: opts.SamplePeriod,
		sounds:       opts.Sounds,
		log:          opts.Logger,
	}
}

// Phase returns the current round state.
func (e *Engine) Phase() Phase {
	return Phase(e.phase.Load())
}

// Rounds returns the number of rounds started.
func (e *Engine) Rounds() int64 {
	return e.rounds.Load()
}

// Score returns a copy of the session counters.
func (e *Engine) Score() Snapshot {
	return e.score.Snapshot()
}

// Bird returns the player entity.
func (e *Engine) Bird() *Bird {
	return e.bird
}

// Barriers returns the barrier manager.
func (e *Engine) Barriers() *BarrierManager {
	return e.barriers
}

// Run plays rounds until the player quits, the key source closes or ctx is
// done. Those all end the session normally and return nil.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		e.sampleFPS(ctx)
	}()

	for {
		e.NewRound()

		quit, err := e.awaitStart(ctx)
		if quit || err != nil {
			return e.sessionEnd(ctx, err)
		}

		quit, err = e.play(ctx)
		if quit || err != nil {
			return e.sessionEnd(ctx, err)
		}
	}
}

// NewRound resets the session and shows the start screen. It must not run
// while a simulation goroutine is active.
func (e *Engine) NewRound() {
	e.score.Reset()
	e.bird.Reset(BirdX, BirdY)
	e.barriers.Reset()
	e.drainFlaps()
	e.phase.Store(int32(PhaseAwaitingStart))
	n := e.rounds.Add(1)

	e.scene.Valley.DrawBackground()
	e.scene.Valley.Draw(e.bird)
	e.scene.Valley.Draw(e.scene.Start)
	e.scene.Valley.Flush(e.sink)
	e.scene.DrawPanel(e.score.Snapshot())
	e.scene.Panel.Flush(e.sink)

	e.log.Debug("round ready", "round", n, "pooled", e.barriers.Pooled())
}

// Flap requests a flap on the next tick. Requests beyond one per tick are
// dropped.
func (e *Engine) Flap() {
	select {
	case e.flaps <- struct{}{}:
	default:
	}
}

// Step advances the world by one tick and draws it. It reports whether the
// bird crashed, in which case the round is over.
func (e *Engine) Step() bool {
	select {
	case <-e.flaps:
		e.bird.Flap()
		e.sounds.Flap()
	default:
	}

	e.bird.Advance()

	allocated := e.barriers.Allocated()
	if n := e.barriers.AdvanceAndRecycle(); n > 0 {
		e.score.AddPoints(n)
		e.sounds.Score()
	}
	if e.barriers.Allocated() > allocated {
		e.log.Debug("barrier pool grew", "allocated", e.barriers.Allocated())
	}
	e.barriers.Move()

	crashed := Collides(e.field, e.bird, e.barriers.Active())

	e.scene.DrawValley(e.bird, e.barriers)
	if crashed {
		e.scene.Valley.Draw(e.scene.Over)
	}
	e.scene.Valley.Flush(e.sink)

	e.score.Tick(DistancePerTick)
	e.scene.DrawPanel(e.score.Snapshot())
	e.scene.Panel.Flush(e.sink)

	if crashed {
		e.score.SetOver()
		e.phase.Store(int32(PhaseGameOver))
		e.sounds.Crash()
		e.log.Info("round over", "round", e.rounds.Load(), "result", e.score.Snapshot())
	}
	return crashed
}

// awaitStart blocks until the player starts the round or quits.
func (e *Engine) awaitStart(ctx context.Context) (quit bool, err error) {
	for {
		a, err := e.keys.ReadAction(ctx)
		if err != nil {
			return true, err
		}
		switch a {
		case core.ActionFlap:
			return false, nil
		case core.ActionQuit:
			return true, nil
		}
	}
}

// play runs one round. It returns when the player restarts after a crash
// (quit false) or leaves (quit true), always after the simulation goroutine
// has exited.
func (e *Engine) play(ctx context.Context) (quit bool, err error) {
	roundCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})

	e.phase.Store(int32(PhasePlaying))
	e.log.Info("round started", "round", e.rounds.Load())

	go func() {
		defer close(done)
		e.simulate(roundCtx)
	}()
	defer func() {
		stop()
		<-done
	}()

	for {
		a, err := e.keys.ReadAction(ctx)
		if err != nil {
			return true, err
		}
		switch a {
		case core.ActionQuit:
			return true, nil
		case core.ActionFlap:
			if e.score.Over() {
				return false, nil
			}
			e.Flap()
		}
	}
}

func (e *Engine) simulate(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(e.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e.Step() {
				return
			}
		}
	}
}

func (e *Engine) sampleFPS(ctx context.Context) {
	ticker := time.NewTicker(e.samplePeriod)
	defer ticker.Stop()

	c := fpsCounter{score: &e.score}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sample()
		}
	}
}

func (e *Engine) drainFlaps() {
	for {
		select {
		case <-e.flaps:
		default:
			return
		}
	}
}

// sessionEnd maps the reasons a session can end to Run's result.
func (e *Engine) sessionEnd(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, core.ErrInputClosed) || ctx.Err() != nil {
		e.log.Info("session ended", "rounds", e.rounds.Load())
		return nil
	}
	return err
}

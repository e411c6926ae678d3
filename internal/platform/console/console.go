// Package console is a display backend drawing straight to the terminal
// with tcell, without a Bubble Tea program in between.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dovefly/internal/core"
	"github.com/vovakirdan/dovefly/internal/registry"
)

// Name is the registry name of the tcell backend.
const Name = "tcell"

// ErrTooSmall is returned by Run when the terminal cannot fit the game.
var ErrTooSmall = errors.New("console: terminal too small")

func init() {
	registry.Register(Name, "tcell direct", func(opts registry.Options) (registry.Display, error) {
		return NewDisplay(opts, tcell.NewScreen), nil
	})
}

// palette mirrors the 256-colour codes used by the Bubble Tea view.
var palette = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.PaletteColor(10)),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.PaletteColor(11)).Bold(true),
	core.ColorBrightWhite:  tcell.StyleDefault.Foreground(tcell.PaletteColor(15)),
	core.ColorOrange:       tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

// Display writes frames cell by cell into a tcell screen and turns key
// events into actions.
type Display struct {
	mu        sync.Mutex
	screen    tcell.Screen // nil outside Run
	newScreen func() (tcell.Screen, error)
	width     int
	height    int
	color     bool
	keys      *core.KeyQueue
}

// NewDisplay creates a display that opens its screen with newScreen when
// Run starts.
func NewDisplay(opts registry.Options, newScreen func() (tcell.Screen, error)) *Display {
	return &Display{
		newScreen: newScreen,
		width:     opts.Width,
		height:    opts.Height,
		color:     opts.Color,
		keys:      core.NewKeyQueue(16),
	}
}

// SetRow implements core.Sink.
func (d *Display) SetRow(row, col int, cells []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.screen == nil {
		return
	}
	for i, c := range cells {
		r := rune(c)
		style := tcell.StyleDefault
		if d.color {
			style = palette[core.ColorOf(r)]
		}
		d.screen.SetContent(col+i, row, r, nil, style)
	}
}

// Show implements core.Sink.
func (d *Display) Show() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.screen != nil {
		d.screen.Show()
	}
}

// ReadAction implements core.KeySource.
func (d *Display) ReadAction(ctx context.Context) (core.Action, error) {
	return d.keys.ReadAction(ctx)
}

// Run implements registry.Display.
func (d *Display) Run(ctx context.Context, play func(ctx context.Context) error) error {
	s, err := d.newScreen()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("console: init: %w", err)
	}
	if w, h := s.Size(); w < d.width || h < d.height {
		s.Fini()
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, d.width, d.height, w, h)
	}
	s.HideCursor()
	s.Clear()

	d.mu.Lock()
	d.screen = s
	d.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.pollEvents(s)
	}()

	err = play(ctx)

	d.mu.Lock()
	d.screen = nil
	s.Fini()
	d.mu.Unlock()

	d.keys.Close()
	wg.Wait()
	return err
}

// pollEvents forwards key presses until the screen is finalized.
func (d *Display) pollEvents(s tcell.Screen) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			d.keys.Push(Action(ev))
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

// Action translates a tcell key event to a game action.
func Action(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'k':
			return core.ActionFlap
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

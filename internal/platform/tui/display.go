// Package tui provides the Bubble Tea integration: the default display
// backend for local play and the SSH server that gives every session its
// own game.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dovefly/internal/core"
	"github.com/vovakirdan/dovefly/internal/registry"
)

// Name is the registry name of the Bubble Tea backend.
const Name = "tea"

func init() {
	registry.Register(Name, "Bubble Tea (default)", func(opts registry.Options) (registry.Display, error) {
		return NewDisplay(opts), nil
	})
}

// Display runs a game inside a Bubble Tea program on the local terminal.
type Display struct {
	*Sink
	keys        *core.KeyQueue
	programOpts []tea.ProgramOption
}

// NewDisplay creates a display for a game of the given size.
func NewDisplay(opts registry.Options, programOpts ...tea.ProgramOption) *Display {
	if len(programOpts) == 0 {
		programOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Display{
		Sink:        NewSink(opts.Width, opts.Height, opts.Color),
		keys:        core.NewKeyQueue(16),
		programOpts: programOpts,
	}
}

// ReadAction implements core.KeySource.
func (d *Display) ReadAction(ctx context.Context) (core.Action, error) {
	return d.keys.ReadAction(ctx)
}

// Run implements registry.Display.
func (d *Display) Run(ctx context.Context, play func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(d.Sink, d.keys), d.programOpts...)

	playErr := make(chan error, 1)
	go func() {
		err := play(ctx)
		d.Sink.Close()
		playErr <- err
	}()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, uiErr := p.Run()
	d.keys.Close()
	cancel()

	err := <-playErr
	if uiErr != nil {
		uiErr = fmt.Errorf("tui: %w", uiErr)
	}
	return errors.Join(uiErr, err)
}

package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dovefly/internal/core"
	"github.com/vovakirdan/dovefly/internal/registry"
)

func TestAction(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFlap},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionFlap},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionFlap},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Action(tc.ev); got != tc.expected {
				t.Errorf("Action() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func simFactory(sim tcell.SimulationScreen) func() (tcell.Screen, error) {
	return func() (tcell.Screen, error) {
		return sim, nil
	}
}

func TestDisplayRun(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewDisplay(registry.Options{Width: 20, Height: 5, Color: true}, simFactory(sim))

	// Writes before Run are dropped
	d.SetRow(0, 0, []byte("early"))
	d.Show()

	err := d.Run(context.Background(), func(ctx context.Context) error {
		d.SetRow(1, 2, []byte("[##]"))
		d.Show()

		if r, _, _, _ := sim.GetContent(3, 1); r != '#' {
			t.Errorf("cell (3, 1) = %q, expected '#'", r)
		}
		if r, _, _, _ := sim.GetContent(0, 0); r == 'e' {
			t.Error("row written before Run should not be drawn")
		}

		sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
		sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		for _, want := range []core.Action{core.ActionFlap, core.ActionQuit} {
			got, err := d.ReadAction(readCtx)
			if err != nil || got != want {
				t.Errorf("ReadAction() = %v, %v; expected %v", got, err, want)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := d.ReadAction(context.Background()); !errors.Is(err, core.ErrInputClosed) {
		t.Errorf("ReadAction() after Run = %v, expected ErrInputClosed", err)
	}
}

func TestDisplayTooSmall(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewDisplay(registry.Options{Width: 500, Height: 500}, simFactory(sim))

	err := d.Run(context.Background(), func(context.Context) error {
		t.Error("play should not run on a small terminal")
		return nil
	})
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Run() error = %v, expected ErrTooSmall", err)
	}
}

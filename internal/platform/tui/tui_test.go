package tui

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dovefly/internal/core"
	"github.com/vovakirdan/dovefly/internal/registry"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionFlap},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestSinkKeepsLatestFrame(t *testing.T) {
	s := NewSink(4, 2, false)

	s.SetRow(0, 0, []byte("ab"))
	s.Show()
	s.SetRow(1, 1, []byte("cd"))
	s.Show()

	frame := <-s.Frames()
	if frame != "ab  \n cd " {
		t.Errorf("frame = %q, expected %q", frame, "ab  \n cd ")
	}

	s.Close()
	s.Close()
	s.Show() // no-op after close
	if _, ok := <-s.Frames(); ok {
		t.Error("Frames() should be closed")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetRow(0, 0, []byte("[##]ab"))
	s.SetRow(1, 0, []byte("|  |  "))

	if got := RenderScreen(s, false); got != s.String() {
		t.Errorf("RenderScreen(plain) = %q, expected %q", got, s.String())
	}

	colored := RenderScreen(s, true)
	for _, part := range []string{"[##]", "ab", "|"} {
		if !strings.Contains(colored, part) {
			t.Errorf("RenderScreen(color) missing %q in %q", part, colored)
		}
	}
}

func TestModelForwardsKeys(t *testing.T) {
	keys := core.NewKeyQueue(4)
	m := NewModel(NewSink(4, 2, false), keys)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Error("flap should not return a command")
	}
	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}

	ctx := context.Background()
	for _, want := range []core.Action{core.ActionFlap, core.ActionQuit} {
		if got, err := keys.ReadAction(ctx); err != nil || got != want {
			t.Errorf("ReadAction() = %v, %v; expected %v", got, err, want)
		}
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(NewSink(4, 2, false), core.NewKeyQueue(1))

	next, cmd := m.Update(FrameMsg("ab  \ncd  "))
	if cmd == nil {
		t.Error("a frame should wait for the next one")
	}
	view := next.View()
	if !strings.Contains(view, "ab") || !strings.Contains(view, "quit") {
		t.Errorf("View() = %q, expected frame and help", view)
	}

	next, _ = next.Update(tea.WindowSizeMsg{Width: 3, Height: 10})
	if !strings.Contains(next.View(), "Terminal too small") {
		t.Errorf("View() = %q, expected size notice", next.View())
	}

	next, _ = next.Update(tea.WindowSizeMsg{Width: 4, Height: 3})
	if strings.Contains(next.View(), "Terminal too small") {
		t.Error("4x3 should fit a 4x2 game plus help")
	}
}

func TestModelQuitsWhenGameEnds(t *testing.T) {
	s := NewSink(4, 2, false)
	m := NewModel(s, core.NewKeyQueue(1))

	s.Close()
	msg := m.Init()()
	if _, ok := msg.(framesClosedMsg); !ok {
		t.Fatalf("Init command produced %T, expected framesClosedMsg", msg)
	}

	next, cmd := m.Update(msg)
	if cmd == nil || !next.(Model).quitting {
		t.Error("model should quit once frames are closed")
	}
	if next.View() != "" {
		t.Errorf("View() = %q after quit, expected empty", next.View())
	}
}

func TestDisplayRunWaitsForPlay(t *testing.T) {
	d := NewDisplay(registry.Options{Width: 4, Height: 2},
		tea.WithInput(nil), tea.WithOutput(io.Discard))

	var finished atomic.Bool
	err := d.Run(context.Background(), func(ctx context.Context) error {
		d.SetRow(0, 0, []byte("ab"))
		d.Show()
		finished.Store(true)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !finished.Load() {
		t.Error("Run() returned before play finished")
	}
	if _, err := d.ReadAction(context.Background()); err != core.ErrInputClosed {
		t.Errorf("ReadAction() after Run error = %v, expected %v", err, core.ErrInputClosed)
	}
}

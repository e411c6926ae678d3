package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dovefly/internal/core"
)

// FrameMsg carries a rendered frame from the Sink.
type FrameMsg string

// framesClosedMsg tells the model the game has ended.
type framesClosedMsg struct{}

// waitForFrame returns a command that blocks until the next frame.
func waitForFrame(frames <-chan string) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return framesClosedMsg{}
		}
		return FrameMsg(f)
	}
}

// Model is the Bubble Tea model showing a running game.
// The game itself runs elsewhere: the model only forwards keys to a
// KeyQueue and displays whatever frames the Sink publishes.
type Model struct {
	sink     *Sink
	keys     *core.KeyQueue
	keymap   KeyMap
	help     help.Model
	frame    string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model displaying sink and feeding keys.
func NewModel(sink *Sink, keys *core.KeyQueue) Model {
	return Model{
		sink:   sink,
		keys:   keys,
		keymap: DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.sink.Frames())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.sink.Frames())

	case framesClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Action(msg)
	m.keys.Push(action)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// MinSize returns the terminal size the view needs.
func (m Model) MinSize() (w, h int) {
	w, h = m.sink.Size()
	return w, h + 1 // help line
}

// View renders the latest frame with the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.MinSize()
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return renderTooSmall(needW, needH, m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.frame, m.help.View(m.keymap))
}

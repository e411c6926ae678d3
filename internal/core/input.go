package core

import (
	"context"
	"errors"
	"sync"
)

// Action represents a semantic game action, abstracted from physical key presses.
// Backends map their own key events onto actions so the engine never sees
// terminal-specific input.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, W, Up - flap while playing, start/restart otherwise
	ActionQuit        // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ErrInputClosed is returned by a KeySource once no more input can arrive.
var ErrInputClosed = errors.New("core: input closed")

// KeySource delivers player actions one at a time.
type KeySource interface {
	// ReadAction blocks until an action is available, the source is closed
	// (ErrInputClosed) or ctx is done (ctx.Err()).
	ReadAction(ctx context.Context) (Action, error)
}

// KeyQueue is a KeySource fed by a display's event loop.
// Push never blocks: when the buffer is full the oldest pending action is
// dropped so a stalled reader cannot freeze the UI.
type KeyQueue struct {
	actions   chan Action
	done      chan struct{}
	closeOnce sync.Once
}

// NewKeyQueue creates a queue that buffers up to size pending actions.
func NewKeyQueue(size int) *KeyQueue {
	if size < 1 {
		size = 16
	}
	return &KeyQueue{
		actions: make(chan Action, size),
		done:    make(chan struct{}),
	}
}

// Push enqueues an action. ActionNone and pushes after Close are ignored.
func (q *KeyQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	select {
	case <-q.done:
		return
	default:
	}

	select {
	case q.actions <- a:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-q.actions:
		default:
		}
		select {
		case q.actions <- a:
		default:
		}
	}
}

// ReadAction implements KeySource. Actions already queued are delivered
// before ErrInputClosed.
func (q *KeyQueue) ReadAction(ctx context.Context) (Action, error) {
	select {
	case a := <-q.actions:
		return a, nil
	default:
	}

	select {
	case a := <-q.actions:
		return a, nil
	case <-q.done:
		select {
		case a := <-q.actions:
			return a, nil
		default:
		}
		return ActionNone, ErrInputClosed
	case <-ctx.Done():
		return ActionNone, ctx.Err()
	}
}

// Close stops the queue. Safe to call more than once.
func (q *KeyQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestKeyQueueOrder(t *testing.T) {
	q := NewKeyQueue(4)
	q.Push(ActionFlap)
	q.Push(ActionNone)
	q.Push(ActionQuit)

	ctx := context.Background()
	for _, want := range []Action{ActionFlap, ActionQuit} {
		got, err := q.ReadAction(ctx)
		if err != nil {
			t.Fatalf("ReadAction() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadAction() = %v, expected %v", got, want)
		}
	}
}

func TestKeyQueueDropsOldest(t *testing.T) {
	q := NewKeyQueue(2)
	q.Push(ActionFlap)
	q.Push(ActionFlap)
	q.Push(ActionQuit)

	ctx := context.Background()
	first, _ := q.ReadAction(ctx)
	second, _ := q.ReadAction(ctx)
	if first != ActionFlap || second != ActionQuit {
		t.Errorf("got %v, %v; expected Flap, Quit", first, second)
	}
}

func TestKeyQueueClose(t *testing.T) {
	q := NewKeyQueue(4)
	q.Push(ActionFlap)
	q.Close()
	q.Close()
	q.Push(ActionQuit)

	ctx := context.Background()
	if a, err := q.ReadAction(ctx); err != nil || a != ActionFlap {
		t.Errorf("ReadAction() = %v, %v; expected pending Flap", a, err)
	}
	if _, err := q.ReadAction(ctx); !errors.Is(err, ErrInputClosed) {
		t.Errorf("ReadAction() error = %v, expected ErrInputClosed", err)
	}
}

func TestKeyQueueContext(t *testing.T) {
	q := NewKeyQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := q.ReadAction(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ReadAction() error = %v, expected deadline exceeded", err)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

package game

import (
	"bytes"
	"slices"
	"testing"

	"github.com/vovakirdan/dovefly/internal/core"
)

func testBarrier(t *testing.T, x, y float64, sep int) *Barrier {
	t.Helper()
	s, err := core.NewSprite(x, y, BarrierW, BarrierH, bytes.Repeat([]byte{'#'}, BarrierW*BarrierH))
	if err != nil {
		t.Fatal(err)
	}
	return &Barrier{Sprite: *s, VX: BarrierVX, VY: BarrierVY, Sep: sep}
}

func TestCollides(t *testing.T) {
	field := core.NewRect(0, 0, ValleyW, ValleyH)

	tests := []struct {
		name     string
		birdY    float64
		barriers []*Barrier
		expected bool
	}{
		{"top border", 0, nil, true},
		{"bottom border", 27, nil, true},
		{"just above bottom border", 26.9, nil, false},
		{"open sky", 10, nil, false},
		{"inside gap", 10, []*Barrier{testBarrier(t, 18, 20, 15)}, false},
		{"hits lower pipe", 21, []*Barrier{testBarrier(t, 18, 20, 15)}, true},
		{"touches lower pipe", 18, []*Barrier{testBarrier(t, 18, 20, 15)}, true},
		{"hits upper pipe at gap edge", 4, []*Barrier{testBarrier(t, 18, 20, 15)}, true},
		{"just below upper pipe", 5.5, []*Barrier{testBarrier(t, 18, 20, 15)}, false},
		{"barrier far right", 21, []*Barrier{testBarrier(t, 50, 20, 15)}, false},
		{"barrier touching bird's right edge", 21, []*Barrier{testBarrier(t, 23, 20, 15)}, true},
		{"barrier touching bird's left edge", 21, []*Barrier{testBarrier(t, 10, 20, 15)}, true},
		{"barrier just left of bird", 21, []*Barrier{testBarrier(t, 9.9, 20, 15)}, false},
		{"second barrier hits", 21, []*Barrier{testBarrier(t, 50, 20, 15), testBarrier(t, 20, 22, 15)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bird, err := core.NewSprite(BirdX, tc.birdY, BirdW, BirdH, []byte("......"))
			if err != nil {
				t.Fatal(err)
			}

			result := Collides(field, bird, slices.Values(tc.barriers))
			if result != tc.expected {
				t.Errorf("Collides(y=%v) = %v, expected %v", tc.birdY, result, tc.expected)
			}
		})
	}
}

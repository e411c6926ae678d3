package game

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/dovefly/internal/core"
)

// Barrier is one obstacle: a pipe sprite that slides left and bobs
// vertically. Its gap spans (Y-Sep, Y): the lower pipe starts at Y and the
// upper pipe ends at Y-Sep.
type Barrier struct {
	core.Sprite
	VX, VY float64
	Sep    int
}

// Gap returns the open interval the bird must stay inside.
func (b *Barrier) Gap() (top, bottom float64) {
	return b.Y - float64(b.Sep), b.Y
}

// UpperY returns the row of the upper pipe's top edge.
func (b *Barrier) UpperY() float64 {
	_, h := b.Size()
	return b.Y - float64(h) - float64(b.Sep)
}

// move integrates one tick. The vertical bounce test runs before the move,
// so a barrier overshoots its limits by one step before turning.
func (b *Barrier) move(fieldH int) {
	b.X += b.VX
	if b.Y > float64(fieldH) && b.VY > 0 {
		b.VY = -b.VY
	} else if b.Y < float64(b.Sep) && b.VY < 0 {
		b.VY = -b.VY
	}
	b.Y += b.VY
}

// BarrierManager keeps the barrier stream. Barriers live in an arena of
// slots and are never freed: retired slots go on a free stack and are
// reused by later spawns.
type BarrierManager struct {
	proto  core.Sprite
	field  core.Rect
	rng    *rand.Rand
	slots  []Barrier
	active []int // slot indices, oldest (leftmost) first
	free   []int
}

// NewBarrierManager creates a manager spawning copies of proto into field.
func NewBarrierManager(proto *core.Sprite, field core.Rect, seed int64) *BarrierManager {
	return &BarrierManager{
		proto:  *proto,
		field:  field,
		rng:    rand.New(rand.NewSource(seed)),
		slots:  make([]Barrier, 0, 8),
		active: make([]int, 0, 8),
		free:   make([]int, 0, 8),
	}
}

// Reset retires every active barrier.
func (m *BarrierManager) Reset() {
	m.free = append(m.free, m.active...)
	m.active = m.active[:0]
}

// AdvanceAndRecycle keeps the stream flowing: it spawns a first barrier when
// none is active, retires the head once it is fully past the left edge, and
// appends a barrier once the tail is fully on screen.
// It returns the number of barriers retired.
func (m *BarrierManager) AdvanceAndRecycle() int {
	if len(m.active) == 0 {
		m.spawn()
	}

	w, _ := m.proto.Size()

	retired := 0
	if head := &m.slots[m.active[0]]; head.X+float64(w) < 0 {
		m.retireHead()
		retired++
	}

	if len(m.active) == 0 {
		m.spawn()
	}
	if tail := &m.slots[m.active[len(m.active)-1]]; tail.X+float64(w) < float64(m.field.W) {
		m.spawn()
	}
	return retired
}

// Move integrates every active barrier by one tick.
func (m *BarrierManager) Move() {
	for _, i := range m.active {
		m.slots[i].move(m.field.H)
	}
}

// Active iterates the active barriers, leftmost first.
// Barriers must not be spawned or retired while iterating.
func (m *BarrierManager) Active() iter.Seq[*Barrier] {
	return func(yield func(*Barrier) bool) {
		for _, i := range m.active {
			if !yield(&m.slots[i]) {
				return
			}
		}
	}
}

// Len returns the number of active barriers.
func (m *BarrierManager) Len() int {
	return len(m.active)
}

// Pooled returns the number of retired barriers waiting for reuse.
func (m *BarrierManager) Pooled() int {
	return len(m.free)
}

// Allocated returns the number of barrier slots ever created.
func (m *BarrierManager) Allocated() int {
	return len(m.slots)
}

func (m *BarrierManager) spawn() {
	var i int
	if n := len(m.free); n > 0 {
		i = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		m.slots = append(m.slots, Barrier{})
		i = len(m.slots) - 1
	}

	sep := randRange(m.rng, MinVSep, MaxVSep)
	b := &m.slots[i]
	b.Sprite = m.proto
	b.X = float64(m.field.W + randRange(m.rng, MinHSep, MaxHSep))
	b.Y = float64(randRange(m.rng, sep, m.field.H))
	b.Sep = sep
	b.VX = BarrierVX
	b.VY = BarrierVY

	m.active = append(m.active, i)
}

func (m *BarrierManager) retireHead() {
	m.free = append(m.free, m.active[0])
	copy(m.active, m.active[1:])
	m.active = m.active[:len(m.active)-1]
}

// randRange returns a value in [lo, hi). Bounds may come in either order;
// equal bounds return lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

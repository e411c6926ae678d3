// Package game implements DoveFly: a dove falls under gravity through a
// stream of sliding barriers and must fly through their gaps.
//
// The package owns the entities, the barrier pool, collision rules, the
// session counters and the Engine that runs rounds against a display.
package game

// Simulation constants, in cells and cells per tick.
const (
	TickRate = 60 // Ticks per second

	Gravity = 0.01 // Added to the bird's velocity each tick
	MinV    = -0.3 // Velocity set by a flap (negative is up)
	MaxV    = 0.3  // Gravity stops accelerating the bird past this

	BarrierVX = -0.2 // Horizontal drift of every barrier
	BarrierVY = 0.1  // Initial vertical speed of every barrier

	// DistancePerTick is the distance added to the session each tick.
	DistancePerTick = -BarrierVX

	// FrameWrap bounds the elapsed-frame counter kept for FPS sampling.
	FrameWrap = 1_000_000
)

// Layout of the play field and side panel.
const (
	ValleyW = 80
	ValleyH = 30

	PanelW = 80
	PanelH = 10
	PanelX = 0
	PanelY = ValleyH // Panel sits right below the valley

	// ScreenW and ScreenH are the smallest terminal the game fits in.
	ScreenW = ValleyW
	ScreenH = ValleyH + PanelH
)

// Entity sizes and spawn ranges.
const (
	BarrierW = 10
	BarrierH = 40

	MinHSep = 10 // Extra distance past the right edge for a new barrier
	MaxHSep = 30
	MinVSep = 10 // Gap height
	MaxVSep = 20

	BirdX      = 20
	BirdY      = 10
	BirdW      = 3
	BirdH      = 2
	BirdFrames = 2

	StartW = 65
	StartH = 6
	OverW  = 53
	OverH  = 7
)

// Panel text positions.
const (
	panelTextCol  = 2
	panelScoreRow = 4
	panelDistRow  = 5
	panelFPSRow   = 6
)

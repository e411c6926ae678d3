package game

import (
	"fmt"

	"github.com/vovakirdan/dovefly/internal/assets"
	"github.com/vovakirdan/dovefly/internal/core"
)

// AssetSpec names an asset and the size the game needs it at.
type AssetSpec struct {
	Name   string
	W, H   int
	Frames int
}

// Assets lists every asset a Scene loads.
var Assets = []AssetSpec{
	{Name: "valley", W: ValleyW, H: ValleyH, Frames: 1},
	{Name: "panel", W: PanelW, H: PanelH, Frames: 1},
	{Name: "bird", W: BirdW, H: BirdH, Frames: BirdFrames},
	{Name: "barrier", W: BarrierW, H: BarrierH, Frames: 1},
	{Name: "start", W: StartW, H: StartH, Frames: 1},
	{Name: "gameover", W: OverW, H: OverH, Frames: 1},
}

// Scene holds every entity built from assets. It is loaded once and reused
// by every round.
type Scene struct {
	Valley  *core.Window
	Panel   *core.Window
	Bird    *Bird
	Barrier *core.Sprite // prototype copied into each spawned barrier
	Start   *core.Sprite
	Over    *core.Sprite
}

// LoadScene builds the scene from src. Any missing or malformed asset is an
// error; nothing is built from partial art.
func LoadScene(src assets.Source) (*Scene, error) {
	sprite := func(name string, x, y float64, w, h int) (*core.Sprite, error) {
		skin, err := src.Load(name, w, h)
		if err != nil {
			return nil, fmt.Errorf("game: load %s: %w", name, err)
		}
		s, err := core.NewSprite(x, y, w, h, skin)
		if err != nil {
			return nil, fmt.Errorf("game: %s: %w", name, err)
		}
		return s, nil
	}

	field := core.NewRect(0, 0, ValleyW, ValleyH)

	valley, err := sprite("valley", 0, 0, ValleyW, ValleyH)
	if err != nil {
		return nil, err
	}
	panel, err := sprite("panel", PanelX, PanelY, PanelW, PanelH)
	if err != nil {
		return nil, err
	}
	barrier, err := sprite("barrier", 0, 0, BarrierW, BarrierH)
	if err != nil {
		return nil, err
	}
	startAt := field.Centered(StartW, StartH)
	start, err := sprite("start", float64(startAt.X), float64(startAt.Y), StartW, StartH)
	if err != nil {
		return nil, err
	}
	overAt := field.Centered(OverW, OverH)
	over, err := sprite("gameover", float64(overAt.X), float64(overAt.Y), OverW, OverH)
	if err != nil {
		return nil, err
	}

	frames, err := src.LoadFrames("bird", BirdW, BirdH, BirdFrames)
	if err != nil {
		return nil, fmt.Errorf("game: load bird: %w", err)
	}
	anime, err := core.NewAnime(BirdX, BirdY, BirdW, BirdH, frames)
	if err != nil {
		return nil, fmt.Errorf("game: bird: %w", err)
	}

	return &Scene{
		Valley:  core.NewWindow(valley),
		Panel:   core.NewWindow(panel),
		Bird:    NewBird(anime),
		Barrier: barrier,
		Start:   start,
		Over:    over,
	}, nil
}

// DrawPanel renders the session counters onto the panel.
func (sc *Scene) DrawPanel(s Snapshot) {
	sc.Panel.DrawBackground()
	sc.Panel.DrawText(panelTextCol, panelScoreRow, fmt.Sprintf("Score:    %d", s.Points))
	sc.Panel.DrawText(panelTextCol, panelDistRow, fmt.Sprintf("Distance: %.1fm", s.Distance))
	sc.Panel.DrawText(panelTextCol, panelFPSRow, fmt.Sprintf("FPS:      %d", s.FPS))
}

// DrawValley composites the play field: background, bird, then both pipes
// of every barrier.
func (sc *Scene) DrawValley(bird *Bird, barriers *BarrierManager) {
	sc.Valley.DrawBackground()
	sc.Valley.Draw(bird)
	for b := range barriers.Active() {
		sc.Valley.Draw(b)
		sc.Valley.DrawAt(b, b.X, b.UpperY())
	}
}

package game

// Sounds plays short effects for game events. Calls must not block the
// simulation.
type Sounds interface {
	Flap()
	Score()
	Crash()
}

type silent struct{}

func (silent) Flap()  {}
func (silent) Score() {}
func (silent) Crash() {}

// Silent returns a Sounds that plays nothing.
func Silent() Sounds {
	return silent{}
}

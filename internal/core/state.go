package core

// Terminal size assumed when the real one can not be read.
const (
	DefaultScreenW = 80
	DefaultScreenH = 24
)

// GameState is the coarse status the platform needs after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

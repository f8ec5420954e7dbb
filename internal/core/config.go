package core

import "time"

// RuntimeConfig contains settings passed from the configuration layer to
// the front end when a session starts.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Redraw ticks per second
	Seed       int64         // RNG seed; 0 means seed from the clock
	SpawnDelay time.Duration // Pause between an accepted move and its new tile
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   30,
		Seed:       0,
		SpawnDelay: 150 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned after feeding one input frame to a game.
type StepResult struct {
	State GameState
	Moved bool // A move was accepted and a new tile is due
}

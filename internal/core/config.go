package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Level    int  // Maze level reached, starting at 1
	Lives    int
	Started  bool // False while waiting for the player to start
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []string // Human-readable simulation events, for logging
}

package core

// RuntimeConfig is passed to the game when it is (re)started.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 lets the front end pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the front-end view of a game's progress.
type GameState struct {
	Moves    int  // Effective moves made so far
	MaxTile  int  // Highest tile on the board
	Won      bool // The win tile was reached
	GameOver bool // Won or lost; no further moves are accepted
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State   GameState
	Changed bool // The step moved at least one tile
}

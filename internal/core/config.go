package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as the platform sees it.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue identifies an audio cue a game wants played.
// Cues are fire-and-forget: a cue that fails to play never affects the game.
type Cue string

// Cues shared by the arcade games.
const (
	CueStart     Cue = "start"
	CuePickup    Cue = "pickup"
	CuePowerUp   Cue = "powerup"
	CueCollision Cue = "collision"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Cues lists audio cues triggered during this step, in order.
	Cues []Cue

	// Degraded counts placements that fell back past the clearance
	// contract since the last reset. Diagnostic only; the platform
	// logs when it grows.
	Degraded int
}

package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Sessions use this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic mazes
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

// GameState represents the current state of a maze session.
type GameState struct {
	Moves   int    // Successful player moves in the current maze
	Ticks   uint64 // Frames simulated since the maze was generated
	Escaped bool   // Whether the player reached the finish cell
	Paused  bool   // Whether the session is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Regenerated is set on the tick a new maze replaced the old one.
	Regenerated bool

	// JustEscaped is set only on the tick the player first reached the finish.
	JustEscaped bool
}

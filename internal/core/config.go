package core

// RuntimeConfig contains configuration passed to the game at
// initialization. The game uses this to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Done       bool // Player asked to leave the game
	InInterior bool // Player is inside an establishment
	DirtyStats bool // Stats changed this tick and should be persisted
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState
}

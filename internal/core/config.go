package core

// RuntimeConfig contains configuration passed to the world at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WorldState represents the current state of a running world.
type WorldState struct {
	Tick     uint64
	Moving   bool // Whether the player moved this tick
	Blocked  bool // Whether a requested move was rejected by collision
	Paused   bool
	Distance float64 // Total pixels travelled since the world was created
}

// StepResult is returned by World.Step() after each simulation tick.
type StepResult struct {
	State WorldState
}

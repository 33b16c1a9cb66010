package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for windowed frontends)
	ScreenH  int   // Screen height in characters (or pixels for windowed frontends)
	TickRate int   // Simulation ticks per second (default 60)
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

// EndReason records why a game stopped running.
type EndReason int

const (
	EndNone EndReason = iota // Still running
	EndQuit                  // Player asked to quit
	EndHit                   // Target was destroyed
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndQuit:
		return "quit"
	case EndHit:
		return "hit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool      // Whether the game has ended
	Reason   EndReason // Why the game ended, EndNone while running
	Frames   int       // Ticks simulated so far
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

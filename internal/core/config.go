package core

// RuntimeConfig is handed to a session on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the small summary the platform polls after each tick.
type GameState struct {
	Score     int
	Level     int
	Lines     int
	GameOver  bool
	Paused    bool
	Animating bool
}

// StepResult is returned by a session after each simulation tick.
type StepResult struct {
	State GameState
	// Changed reports whether anything visible changed during the tick.
	Changed bool
}

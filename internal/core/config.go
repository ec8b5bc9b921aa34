package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the status the platform shows and reacts to.
type GameState struct {
	Score   int  // Confirmed matches
	Elapsed int  // Whole seconds played
	Paused  bool // Whether the game is paused
}

// Cue is a one-shot feedback request for the audio layer.
type Cue int

const (
	CueNone    Cue = iota
	CueCorrect     // Player picked a mirrored frame
	CueWrong       // Player picked a frame that was not mirrored
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

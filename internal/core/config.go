package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
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

// Phase is the top-level screen state of a run.
type Phase int

const (
	PhaseReady    Phase = iota // Waiting for the first input
	PhasePlaying               // Simulation running
	PhasePaused                // Simulation frozen
	PhaseGameOver              // Run ended by a collision
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Phase Phase // Current screen state
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the simulation is frozen by the player.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Notable things that happened during this tick
}

// EventKind identifies a StepResult event.
type EventKind int

const (
	EventScored   EventKind = iota // Score increased
	EventCrashed                   // Run ended
	EventStarted                   // Run left the ready screen
	EventRestarted                 // Run was reset after game over
)

// Event is a notable occurrence during a tick, used by the platform for logging.
type Event struct {
	Kind  EventKind
	Value int
}

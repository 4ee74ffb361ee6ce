package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// TickRateOrDefault returns the configured tick rate, falling back to 60.
func (c RuntimeConfig) TickRateOrDefault() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score known to the game
	Tier     string // Current difficulty tier name
	GameOver bool   // Whether the run has ended (restart pending)
	Paused   bool   // Whether the game is paused or counting down to resume
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventScored      EventKind = iota + 1 // An obstacle pair was cleared
	EventTierChanged                      // Difficulty tier changed
	EventGameOver                         // The run ended
	EventRestarted                        // A new run started after game over
	EventPaused                           // Simulation paused
	EventResumed                          // Countdown finished, simulation running again
)

// Event is emitted by Game.Step. Score carries the score at the time of the event.
type Event struct {
	Kind  EventKind
	Score int
	Tier  string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

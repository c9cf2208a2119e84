package game

// Phase is the coarse session state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// EventKind classifies what happened during a step.
type EventKind int

const (
	EventStarted           EventKind = iota // start screen dismissed
	EventShot                               // projectile fired; Value is the press counter
	EventObstacleDestroyed                  // Value is points awarded
	EventEnemyDestroyed                     // Value is points awarded
	EventEnemyEscaped                       // Value is the (negative) score change
	EventPlayerHit                          // hit animation started
	EventGameOver                           // Value is the final score
	EventReset                              // new round after game over
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventShot:
		return "shot"
	case EventObstacleDestroyed:
		return "obstacle-destroyed"
	case EventEnemyDestroyed:
		return "enemy-destroyed"
	case EventEnemyEscaped:
		return "enemy-escaped"
	case EventPlayerHit:
		return "player-hit"
	case EventGameOver:
		return "game-over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is one notable thing that happened in a step.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult summarizes one iteration of the loop.
type StepResult struct {
	Phase     Phase
	Score     int
	HighScore int
	Frame     uint64
	Events    []Event
}

// Has reports whether an event of kind k occurred.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

package container

// State is the container's lifecycle state as reported by the engine.
// It is observed fresh on every launch and never cached.
type State int

const (
	// StateUnknown means the engine could not be queried.
	StateUnknown State = iota
	// StateNotExists means no container with the configured name exists.
	StateNotExists
	// StateStopped means the container exists but is not running.
	StateStopped
	// StateRunning means the engine reports the container as running.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateNotExists:
		return "not-exists"
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

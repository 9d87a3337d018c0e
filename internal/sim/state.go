package sim

// State is the discrete game lifecycle state.
type State int

const (
	// StateIdle is pre-game / post-reset, accepting a start signal.
	StateIdle State = iota

	// StateRunning is live simulation: the logic clock is ticking.
	StateRunning

	// StateGameOver is frozen logic, accepting a restart signal only.
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine owns the game lifecycle state. Nothing else assigns the state;
// other components read it and drive it only through the transition
// operations below.
type Machine struct {
	state State
}

// NewMachine creates a machine in Idle.
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Start transitions Idle → Running. Returns false (and does nothing) from
// any other state: there is no path from GameOver to Running without a
// Reset in between.
func (m *Machine) Start() bool {
	if m.state != StateIdle {
		return false
	}
	m.state = StateRunning
	return true
}

// ReportCollision transitions Running → GameOver. A collision reported
// outside Running is ignored.
func (m *Machine) ReportCollision() bool {
	if m.state != StateRunning {
		return false
	}
	m.state = StateGameOver
	return true
}

// Reset transitions any state to Idle.
func (m *Machine) Reset() {
	m.state = StateIdle
}

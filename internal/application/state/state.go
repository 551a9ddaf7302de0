package state

// GameState is the mode of the playing scene.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplaying
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Advancing reports whether the simulation ticks in this state.
func (s GameState) Advancing() bool {
	return s == StatePlaying || s == StateReplaying
}

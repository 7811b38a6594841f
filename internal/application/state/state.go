package state

// GameState represents the screen the player is on
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

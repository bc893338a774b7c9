package domain

// Move constants name the tape-head direction taken after a transition.
const (
	// MoveRight shifts the head one cell to the right.
	MoveRight = "Right"
	// MoveLeft shifts the head one cell to the left.
	MoveLeft = "Left"
	// MoveStop halts the machine.
	MoveStop = "Stop"
)

// DecodeMove maps a single-letter move marker to its move name.
// Unknown markers fall back to MoveStop; the source format only ever
// produces R, L or S, and the converter is deliberately permissive here.
func DecodeMove(marker byte) string {
	switch marker {
	case 'R':
		return MoveRight
	case 'L':
		return MoveLeft
	case 'S':
		return MoveStop
	default:
		return MoveStop
	}
}

// Command represents one deterministic transition of the machine:
// in State, reading ReadingChar, write PlaceChar, switch to NextState
// and move the head in the direction of NextMove.
//
// Commands are immutable once parsed. Field names follow the interchange
// format consumed by the simulator tooling.
type Command struct {
	State       int    `json:"state" yaml:"state"`
	NextState   int    `json:"next_state" yaml:"next_state"`
	ReadingChar string `json:"reading_char" yaml:"reading_char"`
	PlaceChar   string `json:"place_char" yaml:"place_char"`
	NextMove    string `json:"next_move" yaml:"next_move"`
}

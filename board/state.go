package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateDraw is when the game has gone 40 moves without a capture, or both sides repeated a move three times.
	StateDraw

	// StateWinBlue is when Red has no legal move left.
	StateWinBlue

	// StateWinRed is when Blue has no legal move left.
	StateWinRed
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsDraw() bool {
	return s == StateDraw
}

// Winner returns the winning side. ok is false while running and on a draw.
func (s State) Winner() (side Side, ok bool) {
	switch s {
	case StateWinBlue:
		return SideBlue, true
	case StateWinRed:
		return SideRed, true
	default:
		return SideUnknown, false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateDraw:
		return "StateDraw"
	case StateWinBlue:
		return "StateWinBlue"
	case StateWinRed:
		return "StateWinRed"
	default:
		return ""
	}
}

func stateWonBy(s Side) State {
	if s == SideBlue {
		return StateWinBlue
	}
	return StateWinRed
}

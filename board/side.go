package board

import "github.com/daystram/checkers/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideBlue
	SideRed
)

// DefaultFirstSide is the side that moves first in the default layout.
const DefaultFirstSide = SideBlue

var sidePieces = [3][]Piece{
	SideBlue: {PieceBlueMan, PieceBlueKing},
	SideRed:  {PieceRedMan, PieceRedKing},
}

func (s Side) String() string {
	switch s {
	case SideBlue:
		return "Blue"
	case SideRed:
		return "Red"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideBlue:
		return SideRed
	case SideRed:
		return SideBlue
	default:
		return SideUnknown
	}
}

// Pieces returns the set of pieces belonging to the side.
func (s Side) Pieces() []Piece {
	if s > SideRed {
		return nil
	}
	return sidePieces[s]
}

// Owns reports whether p is in the side's set of pieces.
func (s Side) Owns(p Piece) bool {
	for _, sp := range s.Pieces() {
		if sp == p {
			return true
		}
	}
	return false
}

// Forward returns the row delta of a man moving ahead.
func (s Side) Forward() position.Pos {
	switch s {
	case SideBlue:
		return -1
	case SideRed:
		return 1
	default:
		return 0
	}
}

// PromotionRow is the far edge row where the side's men are crowned.
func (s Side) PromotionRow() position.Pos {
	if s == SideRed {
		return position.MaxComponentScalar - 1
	}
	return 0
}

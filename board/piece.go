package board

// Piece is the content of a cell. The zero value is an empty cell.
type Piece int8

const (
	PieceEmpty    Piece = 0
	PieceBlueMan  Piece = 1
	PieceBlueKing Piece = 2
	PieceRedMan   Piece = -1
	PieceRedKing  Piece = -2
)

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PieceBlueMan:
		return "Blue Man"
	case PieceBlueKing:
		return "Blue King"
	case PieceRedMan:
		return "Red Man"
	case PieceRedKing:
		return "Red King"
	default:
		return ""
	}
}

// Value is the signed material value: positive for Blue, negative for Red, kings count double.
func (p Piece) Value() int {
	return int(p)
}

func (p Piece) Side() Side {
	switch p {
	case PieceBlueMan, PieceBlueKing:
		return SideBlue
	case PieceRedMan, PieceRedKing:
		return SideRed
	default:
		return SideUnknown
	}
}

func (p Piece) IsEmpty() bool {
	return p == PieceEmpty
}

func (p Piece) IsKing() bool {
	return p == PieceBlueKing || p == PieceRedKing
}

// Promote crowns a man. Kings and empty cells are returned unchanged.
func (p Piece) Promote() Piece {
	switch p {
	case PieceBlueMan:
		return PieceBlueKing
	case PieceRedMan:
		return PieceRedKing
	default:
		return p
	}
}

func (p Piece) Demote() Piece {
	switch p {
	case PieceBlueKing:
		return PieceBlueMan
	case PieceRedKing:
		return PieceRedMan
	default:
		return p
	}
}

// Opposite returns the same rank owned by the other side.
func (p Piece) Opposite() Piece {
	return -p
}

func (p Piece) Symbol() string {
	switch p {
	case PieceBlueMan:
		return "b"
	case PieceBlueKing:
		return "B"
	case PieceRedMan:
		return "r"
	case PieceRedKing:
		return "R"
	default:
		return "."
	}
}

func (p Piece) SymbolUnicode() string {
	switch p {
	case PieceBlueMan, PieceRedMan:
		return "●"
	case PieceBlueKing, PieceRedKing:
		return "♛"
	default:
		return " "
	}
}

package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/checkers/position"
)

const DefaultLayout = "1r1r1r1r/r1r1r1r1/1r1r1r1r/8/8/b1b1b1b1/1b1b1b1b/b1b1b1b1 b"

var ErrInvalidLayout = errors.New("invalid layout")

// UnmarshalLayout parses rows (top first, '/' separated) and the side to move into b.
func UnmarshalLayout(layout string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(layout, " ")
	if len(segments) != 2 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidLayout)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidLayout)
	}
	var cells [TotalCells]Piece
	for y := position.Pos(0); y < Height; y++ {
		ptrX := -1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[y]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidLayout)
			}
			var p Piece
			switch cell := rune(rows[y][ptrX]); cell {
			case 'b':
				p = PieceBlueMan
			case 'B':
				p = PieceBlueKing
			case 'r':
				p = PieceRedMan
			case 'R':
				p = PieceRedKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidLayout)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidLayout, string(cell))
			}
			cells[position.NewPosFromRowCol(y, x)] = p
		}
		if ptrX != len(rows[y])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidLayout)
		}
	}

	var turn Side
	switch segments[1] {
	case "b":
		turn = SideBlue
	case "r":
		turn = SideRed
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidLayout)
	}

	b.cells = cells
	b.turn = turn
	return nil
}

func MarshalLayout(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[position.NewPosFromRowCol(y, x)].IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.cells[position.NewPosFromRowCol(y, x)].Symbol())
			}
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideRed {
		_, _ = builder.WriteString(" r")
	} else {
		_, _ = builder.WriteString(" b")
	}
	return builder.String()
}

func (b *Board) Layout() string {
	return MarshalLayout(b)
}

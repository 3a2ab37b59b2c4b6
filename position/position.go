package position

import (
	"errors"
	"strconv"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalPlayable is the number of cells a piece may stand on.
	TotalPlayable = 32
)

var (
	// ErrUnknownNotation represents a cell without a notation, or a notation without a cell.
	ErrUnknownNotation = errors.New("unknown notation")

	notations [MaxComponentScalar * MaxComponentScalar]int
	cells     [TotalPlayable + 1]Pos
)

func init() {
	n := 0
	for p := Pos(0); p < MaxComponentScalar*MaxComponentScalar; p++ {
		if !p.IsPlayable() {
			continue
		}
		n++
		notations[p] = n
		cells[n] = p
	}
}

// Pos is a cell index, row-major from the top-left corner.
type Pos int8

func NewPosFromRowCol(row, col Pos) Pos {
	return row*MaxComponentScalar + col
}

// NewPosFromNotation resolves a numeric notation (1..32) to its cell.
func NewPosFromNotation(n int) (Pos, error) {
	if n < 1 || n > TotalPlayable {
		return 0, ErrUnknownNotation
	}
	return cells[n], nil
}

func (p Pos) String() string {
	n, err := p.Notation()
	if err != nil {
		return "-"
	}
	return strconv.Itoa(n)
}

// Notation returns the numeric notation of the cell. Only playable cells have one,
// which makes this a validity probe as well.
func (p Pos) Notation() (int, error) {
	if !p.Valid() || notations[p] == 0 {
		return 0, ErrUnknownNotation
	}
	return notations[p], nil
}

// Coordinate returns the file/rank label of the cell, rank 1 being the bottom row.
func (p Pos) Coordinate() string {
	if !p.Valid() {
		return ""
	}
	return p.Col().NotationComponentX() + p.Row().NotationComponentY()
}

func (p Pos) Valid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) IsPlayable() bool {
	return p.Valid() && (p.Row()+p.Col())%2 == 1
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

// NotationComponentY labels a row, counting ranks from the bottom.
func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + MaxComponentScalar - p))
}

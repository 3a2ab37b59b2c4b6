package board

import "github.com/daystram/checkers/position"

// direction is a diagonal step as a row/col delta.
type direction struct {
	row, col position.Pos
}

// northbound directions first, a man only walks the half facing its promotion row
var directionsAll = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func directions(p Piece) []direction {
	if p.IsKing() {
		return directionsAll[:]
	}
	switch p.Side().Forward() {
	case -1:
		return directionsAll[:2]
	case 1:
		return directionsAll[2:]
	default:
		return nil
	}
}

// hop returns the cell n steps away in direction d, if it is on the board.
func hop(from position.Pos, d direction, n position.Pos) (position.Pos, bool) {
	row, col := from.Row()+d.row*n, from.Col()+d.col*n
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return 0, false
	}
	return position.NewPosFromRowCol(row, col), true
}

func promotes(p Piece, at position.Pos) bool {
	return !p.IsKing() && at.Row() == p.Side().PromotionRow()
}

// GenerateSimpleMoves returns the single diagonal steps of p onto empty cells.
func GenerateSimpleMoves(p Piece, from position.Pos, cells *[TotalCells]Piece) []Move {
	var mvs []Move
	for _, d := range directions(p) {
		to, ok := hop(from, d, 1)
		if !ok || !cells[to].IsEmpty() {
			continue
		}
		mvs = append(mvs, Move{From: from, To: to, Promotes: promotes(p, to)})
	}
	return mvs
}

// chain is a partial capture sequence waiting to be extended.
type chain struct {
	at       position.Pos
	captures []Capture
	captured uint64
}

// GenerateCaptureMoves returns every maximal capture chain of p. Captured pieces stay on
// the board until the move is played: they cannot be jumped twice nor landed on.
// A man reaching its promotion row ends its chain there.
func GenerateCaptureMoves(p Piece, from position.Pos, cells *[TotalCells]Piece) []Move {
	side := p.Side()
	if side == SideUnknown {
		return nil
	}
	ds := directions(p)

	var mvs []Move
	frontier := []chain{{at: from}}
	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		extended := false
		if len(c.captures) == 0 || !promotes(p, c.at) {
			// pushed in reverse so chains pop in direction order
			for i := len(ds) - 1; i >= 0; i-- {
				over, ok := hop(c.at, ds[i], 1)
				if !ok {
					continue
				}
				land, ok := hop(c.at, ds[i], 2)
				if !ok {
					continue
				}
				target := cells[over]
				if target.IsEmpty() || side.Owns(target) || c.captured&(1<<over) != 0 {
					continue
				}
				if land != from && !cells[land].IsEmpty() {
					continue
				}
				captures := make([]Capture, len(c.captures), len(c.captures)+1)
				copy(captures, c.captures)
				frontier = append(frontier, chain{
					at:       land,
					captures: append(captures, Capture{Pos: over, Piece: target}),
					captured: c.captured | 1<<over,
				})
				extended = true
			}
		}
		if !extended && len(c.captures) > 0 {
			mvs = append(mvs, Move{
				From:     from,
				To:       c.at,
				Captures: c.captures,
				Promotes: promotes(p, c.at),
			})
		}
	}
	return mvs
}

// GenerateMovesFor returns the simple and capture moves of the piece on pos,
// without the forced capture filter.
func (b *Board) GenerateMovesFor(pos position.Pos) []Move {
	p := b.cells[pos]
	if p.IsEmpty() {
		return nil
	}
	return append(GenerateSimpleMoves(p, pos, &b.cells), GenerateCaptureMoves(p, pos, &b.cells)...)
}

func (b *Board) hasMoves(pos position.Pos) bool {
	p := b.cells[pos]
	return len(GenerateSimpleMoves(p, pos, &b.cells)) > 0 || len(GenerateCaptureMoves(p, pos, &b.cells)) > 0
}

// GenerateMoves returns the legal moves of the side to move. Captures are forced:
// when any exists, no simple move is returned.
func (b *Board) GenerateMoves() []Move {
	var simple, captures []Move
	for pos, p := range b.AllPieces() {
		if !b.turn.Owns(p) {
			continue
		}
		captures = append(captures, GenerateCaptureMoves(p, pos, &b.cells)...)
		if len(captures) == 0 {
			simple = append(simple, GenerateSimpleMoves(p, pos, &b.cells)...)
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return simple
}

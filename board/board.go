package board

import (
	"errors"
	"fmt"
	"iter"

	"github.com/daystram/checkers/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	// DrawMovesWithoutKills is the number of consecutive moves without a capture that draws the game.
	DrawMovesWithoutKills = 40

	repetitionCount = 3
)

var (
	ErrOccupiedDestination  = errors.New("destination is occupied")
	ErrMissingPiece         = errors.New("no piece on cell")
	ErrInvalidPromotionRank = errors.New("piece can only be promoted on an edge row")
	ErrAlreadyKing          = errors.New("piece is already a king")
	ErrEmptyHistory         = errors.New("no move in history")
	ErrInvalidCell          = errors.New("invalid cell")
)

type Board struct {
	cells [TotalCells]Piece

	// meta
	turn              Side
	history           []Record
	movesWithoutKills int
	state             State
}

type boardConfig struct {
	layout       *[TotalCells]Piece
	layoutString *string
	turn         Side
}

type BoardOption func(*boardConfig)

// WithLayout adopts the given cells as-is. Pieces on non-playable cells are not rejected.
func WithLayout(cells [TotalCells]Piece) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = &cells
	}
}

// WithLayoutString parses the layout and the side to move from its string form.
func WithLayoutString(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layoutString = &layout
	}
}

// WithTurn sets the side to move, taking precedence over the layout string.
func WithTurn(s Side) BoardOption {
	return func(cfg *boardConfig) {
		cfg.turn = s
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{
		turn:  DefaultFirstSide,
		state: StateRunning,
	}
	switch {
	case cfg.layoutString != nil:
		if err := UnmarshalLayout(*cfg.layoutString, b); err != nil {
			return nil, err
		}
	case cfg.layout != nil:
		b.cells = *cfg.layout
	default:
		b.arrangeDefault()
	}
	if cfg.turn != SideUnknown {
		b.turn = cfg.turn
	}
	return b, nil
}

func (b *Board) arrangeDefault() {
	b.cells = [TotalCells]Piece{}
	for row := position.Pos(0); row < Height; row++ {
		var p Piece
		switch {
		case row < 3:
			p = PieceRedMan
		case row >= Height-3:
			p = PieceBlueMan
		default:
			continue
		}
		for col := row%2 ^ 1; col < Width; col += 2 {
			b.cells[position.NewPosFromRowCol(row, col)] = p
		}
	}
}

// Reset restores the default layout and clears status and history.
func (b *Board) Reset() {
	b.arrangeDefault()
	b.turn = DefaultFirstSide
	b.history = nil
	b.movesWithoutKills = 0
	b.state = StateRunning
}

// Clear empties every cell. Status and history are left untouched.
func (b *Board) Clear() {
	b.cells = [TotalCells]Piece{}
}

func (b *Board) Piece(pos position.Pos) Piece {
	return b.cells[pos]
}

// Cells returns a snapshot of the board.
func (b *Board) Cells() [TotalCells]Piece {
	return b.cells
}

// AllPieces iterates the occupied cells in index order.
func (b *Board) AllPieces() iter.Seq2[position.Pos, Piece] {
	return func(yield func(position.Pos, Piece) bool) {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			if p := b.cells[pos]; !p.IsEmpty() {
				if !yield(pos, p) {
					return
				}
			}
		}
	}
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) Winner() (Side, bool) {
	return b.state.Winner()
}

func (b *Board) MovesWithoutKills() int {
	return b.movesWithoutKills
}

func (b *Board) Ply() int {
	return len(b.history)
}

// LastMove returns the most recent history record.
func (b *Board) LastMove() (Record, bool) {
	if len(b.history) == 0 {
		return Record{}, false
	}
	return b.history[len(b.history)-1], true
}

func (b *Board) Notation(pos position.Pos) (int, error) {
	return pos.Notation()
}

// Move relocates a piece and opens a new history record. Captures and promotion are
// logged onto that record by Kill and Promote.
func (b *Board) Move(from, to position.Pos) error {
	if err := checkCell(from); err != nil {
		return err
	}
	if err := checkCell(to); err != nil {
		return err
	}
	// a king's capture loop may end on its own cell
	if to != from && !b.cells[to].IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupiedDestination, to.Coordinate())
	}
	if b.cells[from].IsEmpty() {
		return fmt.Errorf("%w: %s", ErrMissingPiece, from.Coordinate())
	}

	p := b.cells[from]
	b.cells[from] = PieceEmpty
	b.cells[to] = p
	b.history = append(b.history, Record{
		From:              from,
		To:                to,
		MovesWithoutKills: b.movesWithoutKills,
		state:             b.state,
	})
	b.movesWithoutKills++
	b.turn = b.turn.Opposite()
	return nil
}

// Kill removes a piece, logging it onto the most recent record.
func (b *Board) Kill(pos position.Pos) error {
	if err := checkCell(pos); err != nil {
		return err
	}
	if b.cells[pos].IsEmpty() {
		return fmt.Errorf("%w: %s", ErrMissingPiece, pos.Coordinate())
	}
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}

	last := &b.history[len(b.history)-1]
	last.Captures = append(last.Captures, Capture{Pos: pos, Piece: b.cells[pos]})
	b.movesWithoutKills = 0
	b.cells[pos] = PieceEmpty
	return nil
}

// Promote crowns the man on an edge row, logging it onto the most recent record.
func (b *Board) Promote(pos position.Pos) error {
	if err := checkCell(pos); err != nil {
		return err
	}
	if row := pos.Row(); row != 0 && row != Height-1 {
		return fmt.Errorf("%w: %s", ErrInvalidPromotionRank, pos.Coordinate())
	}
	if b.cells[pos].IsEmpty() {
		return fmt.Errorf("%w: %s", ErrMissingPiece, pos.Coordinate())
	}
	if b.cells[pos].IsKing() {
		return fmt.Errorf("%w: %s", ErrAlreadyKing, pos.Coordinate())
	}
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}

	b.cells[pos] = b.cells[pos].Promote()
	b.history[len(b.history)-1].Promoted = true
	return nil
}

// Undo reverts the most recent record: promotion, captures, relocation, counter, turn and state.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	if last.Promoted {
		b.cells[last.To] = b.cells[last.To].Demote()
	}
	for _, c := range last.Captures {
		b.cells[c.Pos] = c.Piece
	}
	p := b.cells[last.To]
	b.cells[last.To] = PieceEmpty
	b.cells[last.From] = p

	b.movesWithoutKills = last.MovesWithoutKills
	b.turn = b.turn.Opposite()
	b.state = last.state
	return nil
}

// IsDraw checks the 40 move rule, and when the first side is to move, whether both sides
// repeated the same move three times in a row. A running game becomes drawn.
func (b *Board) IsDraw() bool {
	isDraw := b.movesWithoutKills >= DrawMovesWithoutKills
	if !isDraw && b.turn == DefaultFirstSide {
		isDraw = b.isRepeated()
	}
	if isDraw && b.state.IsRunning() {
		b.state = StateDraw
	}
	return isDraw
}

func (b *Board) isRepeated() bool {
	n := len(b.history)
	if n < 2*repetitionCount {
		return false
	}
	// offset 1 walks the side that just moved, offset 2 the side to move
	for offset := 1; offset <= 2; offset++ {
		last := b.history[n-offset]
		for i := 1; i < repetitionCount; i++ {
			if !last.sameMove(b.history[n-offset-2*i]) {
				return false
			}
		}
	}
	return true
}

// UpdateState decides whether the side to move has lost by running out of moves.
func (b *Board) UpdateState() {
	if !b.state.IsRunning() || b.IsDraw() {
		return
	}
	for pos, p := range b.AllPieces() {
		if b.turn.Owns(p) && b.hasMoves(pos) {
			return
		}
	}
	b.state = stateWonBy(b.turn.Opposite())
}

// Hash returns a canonical encoding of the cells, one symbol per cell.
func (b *Board) Hash() string {
	buf := make([]byte, TotalCells)
	for pos, p := range b.cells {
		buf[pos] = p.Symbol()[0]
	}
	return string(buf)
}

func (b *Board) Clone() *Board {
	history := make([]Record, len(b.history))
	for i, r := range b.history {
		r.Captures = append([]Capture(nil), r.Captures...)
		history[i] = r
	}
	return &Board{
		cells:             b.cells,
		turn:              b.turn,
		history:           history,
		movesWithoutKills: b.movesWithoutKills,
		state:             b.state,
	}
}

// Mirror returns the position as seen from the other side: the board rotated half a turn,
// every piece changing side, and the other side to move. History is not carried over.
func (b *Board) Mirror() *Board {
	m := &Board{
		turn:              b.turn.Opposite(),
		movesWithoutKills: b.movesWithoutKills,
		state:             b.state,
	}
	for pos, p := range b.cells {
		m.cells[len(b.cells)-1-pos] = p.Opposite()
	}
	if winner, ok := b.state.Winner(); ok {
		m.state = stateWonBy(winner.Opposite())
	}
	return m
}

func checkCell(pos position.Pos) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCell, pos)
	}
	return nil
}

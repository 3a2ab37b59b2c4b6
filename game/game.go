package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

var ErrMoveNotFound = errors.New("move not found")

// Game pairs a board with the list of moves legal on it. Moves are addressed by their
// index in that list, which is rebuilt after every change to the board.
type Game struct {
	board  *board.Board
	moves  []board.Move
	logger zerolog.Logger
}

type config struct {
	board  *board.Board
	logger zerolog.Logger
}

type Option func(*config)

func WithBoard(b *board.Board) Option {
	return func(cfg *config) {
		cfg.board = b
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func NewGame(opts ...Option) (*Game, error) {
	cfg := &config{
		logger: zerolog.Nop(),
	}
	for _, f := range opts {
		f(cfg)
	}

	b := cfg.board
	if b == nil {
		var err error
		if b, err = board.NewBoard(); err != nil {
			return nil, err
		}
	}

	g := &Game{
		board:  b,
		logger: cfg.logger,
	}
	g.refresh()
	return g, nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Moves returns the legal moves of the side to move. The slice is owned by the game.
func (g *Game) Moves() []board.Move {
	return g.moves
}

func (g *Game) State() board.State {
	return g.board.State()
}

// PlayMove plays the move at index of the current move list.
func (g *Game) PlayMove(index int) error {
	if index < 0 || index >= len(g.moves) {
		return fmt.Errorf("%w: index %d of %d", ErrMoveNotFound, index, len(g.moves))
	}
	mv := g.moves[index]
	side := g.board.Turn()
	if err := mv.Play(g.board); err != nil {
		return err
	}
	g.refresh()
	g.logger.Debug().
		Str("side", side.String()).
		Str("move", mv.String()).
		Int("captures", len(mv.Captures)).
		Bool("promotes", mv.Promotes).
		Str("state", g.board.State().String()).
		Msg("move played")
	return nil
}

// FindMoveIndex returns the index of the first move going from start to end.
func (g *Game) FindMoveIndex(start, end position.Pos) (int, error) {
	for i, mv := range g.moves {
		if mv.From == start && mv.To == end {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s to %s", ErrMoveNotFound, start.Coordinate(), end.Coordinate())
}

// FindMove returns the index of mv in the move list, telling apart moves sharing both ends.
func (g *Game) FindMove(mv board.Move) (int, error) {
	for i, m := range g.moves {
		if m.Equals(mv) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrMoveNotFound, mv)
}

func (g *Game) PlayMoveBetween(start, end position.Pos) error {
	i, err := g.FindMoveIndex(start, end)
	if err != nil {
		return err
	}
	return g.PlayMove(i)
}

// PlayNotation plays a move written as "11-15" or "15x24x31".
func (g *Game) PlayNotation(notation string) error {
	start, end, err := board.ParseMoveNotation(notation)
	if err != nil {
		return err
	}
	return g.PlayMoveBetween(start, end)
}

func (g *Game) Undo() error {
	if err := g.board.Undo(); err != nil {
		return err
	}
	g.refresh()
	g.logger.Debug().Int("ply", g.board.Ply()).Msg("move undone")
	return nil
}

func (g *Game) Reset() {
	g.board.Reset()
	g.refresh()
	g.logger.Debug().Msg("game reset")
}

func (g *Game) refresh() {
	g.board.UpdateState()
	if !g.board.State().IsRunning() {
		g.moves = nil
		return
	}
	g.moves = g.board.GenerateMoves()
}

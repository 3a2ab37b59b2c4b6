package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/checkers/board"
)

const (
	DefaultDepth = 6
	MaxDepth     = 64

	// ctx is polled once every this many nodes
	cancelCheckInterval = 1 << 10
)

var (
	ErrGameOver  = errors.New("game is over")
	ErrNoResult  = errors.New("cannot resolve best move")
	scoreInf     = math.Inf(1)
	scoreNegInf  = math.Inf(-1)
	printer      = message.NewPrinter(language.English)
	errCancelled = errors.New("search cancelled")
)

type PVLine struct {
	mvs []board.Move
}

func (pvl *PVLine) GetPV() (board.Move, bool) {
	if len(pvl.mvs) == 0 {
		return board.Move{}, false
	}
	return pvl.mvs[0], true
}

func (pvl *PVLine) Set(mv board.Move, nextPVL PVLine) {
	if pvl == nil {
		return
	}
	pvl.mvs = append([]board.Move{mv}, nextPVL.mvs...)
}

func (pvl *PVLine) Clear() {
	pvl.mvs = pvl.mvs[:0] // memory not released for GC
}

func (pvl *PVLine) Len() int {
	return len(pvl.mvs)
}

func (pvl *PVLine) Moves() []board.Move {
	return slices.Clone(pvl.mvs)
}

func (pvl *PVLine) String() string {
	if pvl == nil {
		return ""
	}
	builder := strings.Builder{}
	for i, mv := range pvl.mvs {
		_, _ = builder.WriteString(mv.String())
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

// Stats describes the most recent search.
type Stats struct {
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	PV      []board.Move

	HashHits   int
	HashMisses int
	HashWrites int
}

type config struct {
	hashTableSize int
	logger        zerolog.Logger
}

type Option func(*config)

// WithHashTableSize bounds the number of transposition table entries.
func WithHashTableSize(size int) Option {
	return func(cfg *config) {
		cfg.hashTableSize = size
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

type Engine struct {
	tt     *TranspositionTable
	logger zerolog.Logger

	nodes uint64
	stats Stats
}

func NewEngine(opts ...Option) *Engine {
	cfg := &config{
		hashTableSize: DefaultHashTableSize,
		logger:        zerolog.Nop(),
	}
	for _, f := range opts {
		f(cfg)
	}

	return &Engine{
		tt:     NewTranspositionTable(cfg.hashTableSize),
		logger: cfg.logger,
	}
}

// Search looks for the best move of the side to move with iterative deepening up to depth,
// returning it with its score relative to that side. The given board is not modified.
// When ctx ends early, the result of the last completed iteration is returned.
func (e *Engine) Search(ctx context.Context, b *board.Board, depth int) (board.Move, float64, error) {
	if depth < 1 {
		depth = DefaultDepth
	}
	depth = min(depth, MaxDepth)

	b = b.Clone()
	b.UpdateState()
	if !b.State().IsRunning() {
		return board.Move{}, 0, fmt.Errorf("%w: %s", ErrGameOver, b.State())
	}

	e.nodes = 0
	e.stats = Stats{}
	e.tt.ResetStats()

	var bestMove board.Move
	var bestScore float64
	var pvl PVLine
	found := false
	start := time.Now()

	for d := 1; d <= depth; d++ {
		if ctx.Err() != nil {
			break
		}
		mv, score, err := e.searchRoot(ctx, b, &pvl, d)
		if err != nil {
			if errors.Is(err, errCancelled) {
				break
			}
			return board.Move{}, 0, err
		}
		bestMove, bestScore, found = mv, score, true

		elapsed := time.Since(start)
		e.stats.Depth = d
		e.stats.PV = pvl.Moves()
		e.logger.Debug().
			Int("depth", d).
			Str("score", formatScore(score)).
			Uint64("nodes", e.nodes).
			Dur("elapsed", elapsed).
			Msg(printer.Sprintf("depth:%d [%s] nodes:%d (%.0fn/s) pv:%s",
				d, formatScore(score), e.nodes, float64(e.nodes)/(elapsed+1).Seconds(), pvl.String()))

		// the outcome is decided, deeper iterations cannot change it
		if math.IsInf(score, 0) {
			break
		}
		pvl.Clear()
	}

	e.stats.Nodes = e.nodes
	e.stats.Elapsed = time.Since(start)
	e.stats.HashHits, e.stats.HashMisses, e.stats.HashWrites = e.tt.Stats()

	if !found {
		if err := ctx.Err(); err != nil {
			return board.Move{}, 0, fmt.Errorf("%w: %w", ErrNoResult, err)
		}
		return board.Move{}, 0, ErrNoResult
	}
	return bestMove, bestScore, nil
}

// Stats returns the statistics of the most recent search.
func (e *Engine) Stats() Stats {
	return e.stats
}

// ClearHash empties the transposition table.
func (e *Engine) ClearHash() {
	e.tt.Clear()
}

func (e *Engine) searchRoot(ctx context.Context, b *board.Board, pvl *PVLine, depth int) (board.Move, float64, error) {
	e.nodes++
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, 0, ErrNoResult
	}
	_, ttMove, _, _, _ := e.tt.Get(b)
	orderMoves(mvs, ttMove)

	var childPVL PVLine
	var bestMove board.Move
	bestScore := scoreNegInf
	alpha := scoreNegInf
	for i, mv := range mvs {
		score, err := e.child(ctx, b, mv, &childPVL, depth-1, 1, alpha, scoreInf)
		if err != nil {
			return board.Move{}, 0, err
		}
		if i == 0 || score > bestScore {
			bestMove = mv
			bestScore = score
			pvl.Set(mv, childPVL)
		}
		alpha = max(alpha, score)
		childPVL.Clear()
	}

	e.tt.Set(b, EntryTypeExact, bestMove, bestScore, depth)
	return bestMove, bestScore, nil
}

// child plays mv, searches the resulting position and reverts mv. The returned score is
// relative to the side that played mv.
func (e *Engine) child(
	ctx context.Context,
	b *board.Board,
	mv board.Move,
	pvl *PVLine,
	depth, dist int,
	alpha, beta float64,
) (float64, error) {
	if err := mv.Play(b); err != nil {
		return 0, err
	}
	score, err := e.negamax(ctx, b, pvl, depth, dist, -beta, -alpha)
	if uerr := b.Undo(); uerr != nil {
		return 0, uerr
	}
	return -score, err
}

// For a given board, regardless turn, we always want to maximize alpha.
func (e *Engine) negamax(
	ctx context.Context,
	b *board.Board,
	pvl *PVLine,
	depth, dist int,
	alpha, beta float64,
) (float64, error) {
	e.nodes++
	if e.nodes%cancelCheckInterval == 0 && ctx.Err() != nil {
		return 0, errCancelled
	}

	// check if leaf reached or game has terminated
	b.UpdateState()
	if depth == 0 || !b.State().IsRunning() {
		return b.Score(), nil
	}

	// check from TranspositionTable
	ttType, ttMove, ttScore, ttDepth, ok := e.tt.Get(b)
	if ok && ttDepth >= depth {
		switch ttType {
		case EntryTypeExact:
			return ttScore, nil
		case EntryTypeLowerBound:
			if ttScore >= beta {
				return beta, nil
			}
		case EntryTypeUpperBound:
			if ttScore <= alpha {
				return alpha, nil
			}
		}
	}

	mvs := b.GenerateMoves()
	orderMoves(mvs, ttMove)

	var childPVL PVLine
	var bestMove board.Move
	bestScore := scoreNegInf
	ttType = EntryTypeUpperBound
	for i, mv := range mvs {
		score, err := e.child(ctx, b, mv, &childPVL, depth-1, dist+1, alpha, beta)
		if err != nil {
			return 0, err
		}

		if i == 0 || score > bestScore {
			bestMove = mv
			bestScore = score
		}
		if score >= beta {
			e.tt.Set(b, EntryTypeLowerBound, bestMove, beta, depth)
			return beta, nil // fail-hard cutoff
		}
		if score > alpha {
			alpha = score
			pvl.Set(mv, childPVL)
			ttType = EntryTypeExact
		}
		childPVL.Clear()
	}

	// set TranspositionTable
	e.tt.Set(b, ttType, bestMove, alpha, depth)
	return alpha, nil
}

// orderMoves puts the hash move first, then longer capture chains.
func orderMoves(mvs []board.Move, ttMove board.Move) {
	slices.SortStableFunc(mvs, func(a, b board.Move) int {
		aHash, bHash := a.Equals(ttMove), b.Equals(ttMove)
		switch {
		case aHash && !bHash:
			return -1
		case bHash && !aHash:
			return 1
		}
		return len(b.Captures) - len(a.Captures)
	})
}

func formatScore(s float64) string {
	switch {
	case math.IsInf(s, 1):
		return "+inf"
	case math.IsInf(s, -1):
		return "-inf"
	case s > 0:
		return fmt.Sprintf("+%.2f", s)
	case s < 0:
		return fmt.Sprintf("%.2f", s)
	}
	return "0"
}

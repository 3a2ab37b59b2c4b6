package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/daystram/checkers/bench"
	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/engine"
	"github.com/daystram/checkers/game"
)

var (
	EngineName   = "Checkers"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		depth:         engine.DefaultDepth,
		timeout:       10 * time.Second,
		hashTableSize: engine.DefaultHashTableSize,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	depth         int
	timeout       time.Duration
	hashTableSize int
	parallelPerft bool
}

// Interface drives a game over a line based text protocol.
type Interface struct {
	in      io.Reader
	out     io.Writer
	outMu   sync.Mutex
	logger  zerolog.Logger
	base    zerolog.Logger
	game    *game.Game
	engine  *engine.Engine
	options options

	engineCancel context.CancelFunc
	engineDone   chan struct{}
}

func NewInterface(in io.Reader, out io.Writer, logger zerolog.Logger) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		logger:  logger,
		base:    logger,
		options: defaultOptions,
	}
}

// Run reads commands until "quit" or the end of input.
func (i *Interface) Run(ctx context.Context) error {
	if err := i.reset(ctx); err != nil {
		return err
	}
	defer i.commandStop(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		var err error
		switch args[0] {
		case "info":
			i.commandInfo(ctx)
		case "new":
			err = i.reset(ctx)
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			err = i.commandSetOption(ctx, args[1:])
		case "position":
			err = i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "moves":
			i.commandMoves(ctx)
		case "play":
			err = i.commandPlay(ctx, args[1:])
		case "undo":
			err = i.commandUndo(ctx)
		case "go":
			err = i.commandGo(ctx, args[1:])
		case "stop":
			i.commandStop(ctx)
		case "quit":
			return nil
		default:
			err = fmt.Errorf("unknown command %q", args[0])
		}
		if err != nil {
			i.logger.Debug().Err(err).Str("command", args[0]).Msg("command failed")
			i.println("error", err)
		}
	}
	return scanner.Err()
}

func (i *Interface) commandInfo(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option Depth type spin default %d min 1 max %d", defaultOptions.depth, engine.MaxDepth))
	i.println(fmt.Sprintf("option Timeout type spin default %d min 100 max 3600000", defaultOptions.timeout.Milliseconds()))
	i.println(fmt.Sprintf("option Hash type spin default %d min 1 max 16777216", defaultOptions.hashTableSize))
	i.println(fmt.Sprintf("option ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println("infook")
}

// commandReady waits for a running search before answering.
func (i *Interface) commandReady(_ context.Context) {
	i.wait()
	i.println("readyok")
}

func (i *Interface) commandSetOption(ctx context.Context, args []string) error {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return errors.New("usage: setoption name <name> value <value>")
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return err
		}
		i.commandStop(ctx)
		i.options.debug = value
		i.logger = i.base
		if value {
			i.logger = i.base.Level(zerolog.DebugLevel)
		}
		i.engine = i.newEngine()
		g, err := game.NewGame(game.WithBoard(i.game.Board()), game.WithLogger(i.logger))
		if err != nil {
			return err
		}
		i.game = g
	case "depth":
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 1 || value > engine.MaxDepth {
			return fmt.Errorf("invalid depth %q", valueStr)
		}
		i.options.depth = value
	case "timeout":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value < 100 || value > 3600000 {
			return fmt.Errorf("invalid timeout %q", valueStr)
		}
		i.options.timeout = time.Duration(value * uint64(time.Millisecond))
	case "hash":
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 1 || value > 1<<24 {
			return fmt.Errorf("invalid hash size %q", valueStr)
		}
		i.commandStop(ctx)
		i.options.hashTableSize = value
		i.engine = i.newEngine()
	case "parallelperft":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return err
		}
		i.options.parallelPerft = value
	default:
		return fmt.Errorf("unknown option %q", args[1])
	}
	return nil
}

// commandPosition sets up "startpos" or "layout <rows> <turn>", optionally followed by
// "moves" and a list of move notations.
func (i *Interface) commandPosition(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: position startpos|layout <layout> [moves ...]")
	}
	i.commandStop(ctx)

	var layout string
	var rest []string
	switch args[0] {
	case "startpos":
		layout, rest = board.DefaultLayout, args[1:]
	case "layout":
		if len(args) < 3 {
			return board.ErrInvalidLayout
		}
		layout, rest = strings.Join(args[1:3], " "), args[3:]
	default:
		return fmt.Errorf("unknown position %q", args[0])
	}

	b, err := board.NewBoard(board.WithLayoutString(layout))
	if err != nil {
		return err
	}
	g, err := game.NewGame(game.WithBoard(b), game.WithLogger(i.logger))
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("unexpected %q", rest[0])
		}
		for _, nt := range rest[1:] {
			if err := g.PlayNotation(nt); err != nil {
				return err
			}
		}
	}
	i.game = g
	return nil
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.game.Board().Draw())
	i.println("layout", i.game.Board().Layout())
	i.println("state", i.game.State())
}

func (i *Interface) commandMoves(_ context.Context) {
	for idx, mv := range i.game.Moves() {
		i.println(fmt.Sprintf("%d: %s", idx, mv))
	}
}

// commandPlay accepts a move notation or an index into the move list.
func (i *Interface) commandPlay(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: play <notation|index>")
	}
	i.commandStop(ctx)
	if idx, err := strconv.Atoi(args[0]); err == nil {
		return i.game.PlayMove(idx)
	}
	return i.game.PlayNotation(args[0])
}

func (i *Interface) commandUndo(ctx context.Context) error {
	i.commandStop(ctx)
	return i.game.Undo()
}

func (i *Interface) commandGo(ctx context.Context, args []string) error {
	depth := i.options.depth
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return errors.New("usage: go perft <depth>")
			}
			d, err := strconv.Atoi(args[1])
			if err != nil || d < 0 {
				return fmt.Errorf("invalid depth %q", args[1])
			}
			i.commandStop(ctx)
			i.perft(d)
			return nil
		case "depth":
			if len(args) != 2 {
				return errors.New("usage: go depth <depth>")
			}
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			depth = d
		default:
			return fmt.Errorf("unknown search mode %q", mode)
		}
	}

	i.commandStop(ctx)
	b := i.game.Board().Clone()
	e, debug := i.engine, i.options.debug
	engineCtx, engineCancel := context.WithTimeout(ctx, i.options.timeout)
	done := make(chan struct{})
	i.engineCancel, i.engineDone = engineCancel, done
	go func() {
		defer close(done)
		defer engineCancel()

		bestMove, score, err := e.Search(engineCtx, b, depth)
		if err != nil {
			i.println("error", err)
			return
		}
		if debug {
			stats := e.Stats()
			i.println(fmt.Sprintf("info depth %d nodes %d time %d pv %s",
				stats.Depth, stats.Nodes, stats.Elapsed.Milliseconds(), formatPV(stats.PV)))
		}
		i.println(fmt.Sprintf("bestmove %s score %s", bestMove, strconv.FormatFloat(score, 'f', 2, 64)))
	}()
	return nil
}

// perft counts from the live board, history included.
func (i *Interface) perft(depth int) {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	bench.PerftBoard(depth, i.game.Board(), i.options.parallelPerft, true, out)
	close(out)
	<-done
}

func (i *Interface) commandStop(_ context.Context) {
	if i.engineCancel != nil {
		i.engineCancel()
	}
	i.wait()
}

func (i *Interface) wait() {
	if i.engineDone != nil {
		<-i.engineDone
	}
	i.engineCancel, i.engineDone = nil, nil
}

func (i *Interface) reset(ctx context.Context) error {
	i.commandStop(ctx)
	if err := i.commandPosition(ctx, []string{"startpos"}); err != nil {
		return err
	}
	i.engine = i.newEngine()
	return nil
}

func (i *Interface) newEngine() *engine.Engine {
	return engine.NewEngine(
		engine.WithHashTableSize(i.options.hashTableSize),
		engine.WithLogger(i.logger),
	)
}

func (i *Interface) println(a ...any) {
	i.outMu.Lock()
	defer i.outMu.Unlock()
	_, _ = fmt.Fprintln(i.out, a...)
}

func formatPV(mvs []board.Move) string {
	nts := make([]string, len(mvs))
	for idx, mv := range mvs {
		nts[idx] = mv.String()
	}
	return strings.Join(nts, " ")
}

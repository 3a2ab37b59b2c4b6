package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/console"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	debug   = flag.Bool("debug", false, "enable debug logging")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")
	stepLimit = flag.Int("step.limit", 5000, "maximum plies in step mode")
	stepDelay = flag.Duration("step.delay", 10*time.Millisecond, "delay between plies in step mode")

	searchRun     = flag.Bool("search", false, "run search mode")
	searchDepth   = flag.Int("search.depth", 6, "search depth in search mode")
	searchTimeout = flag.Duration("search.timeout", 10*time.Second, "search timeout per move in search mode")
	searchSteps   = flag.Int("search.steps", 200, "maximum plies in search mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 6, "depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "parallelize root moves in perft mode")

	logger zerolog.Logger
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		logger.Error().Err(err).Msg("exited with error")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		logger.Info().Msgf("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain takes the layout from the remaining arguments, e.g. "8/8/8/8/1r6/2b5/8/8 b".
func realMain(args []string) error {
	layout := board.DefaultLayout
	if len(args) > 0 {
		layout = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(layout, *movegenDraw)
	}
	if *stepRun {
		return step(layout, *stepSeed, *stepLimit, *stepDelay)
	}
	if *searchRun {
		return search(layout, *searchSteps, *searchDepth, *searchTimeout)
	}
	if *perftRun {
		return perft(*perftDepth, layout, *perftParallel)
	}

	return console.NewInterface(os.Stdin, os.Stdout, logger).Run(context.Background())
}

package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/engine"
)

// search pits the engine, playing the side to move, against random moves.
func search(layout string, steps, depth int, timeout time.Duration) error {
	g, err := newGame(layout)
	if err != nil {
		return err
	}
	e := engine.NewEngine(engine.WithLogger(logger))
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	fmt.Println(g.Board().Draw())
	fmt.Println(g.Board().Layout())
	fmt.Println(g.Board().DebugString())

	playingSide := g.Board().Turn()
	getMove := func() (board.Move, error) {
		if g.Board().Turn() != playingSide {
			mvs := g.Moves()
			return mvs[rng.Intn(len(mvs))], nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		mv, score, err := e.Search(ctx, g.Board(), depth)
		if err != nil {
			return board.Move{}, err
		}
		stats := e.Stats()
		logger.Info().
			Str("move", mv.String()).
			Float64("score", score).
			Int("depth", stats.Depth).
			Uint64("nodes", stats.Nodes).
			Int("hash_hits", stats.HashHits).
			Msg("engine move")
		return mv, nil
	}

	var history []board.Move
	for ply := 0; ply < steps && g.State().IsRunning(); ply++ {
		side := g.Board().Turn()
		mv, err := getMove()
		if err != nil {
			return err
		}
		idx, err := g.FindMove(mv)
		if err != nil {
			return err
		}
		if err := g.PlayMove(idx); err != nil {
			return err
		}
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s\n", side, mv)
		fmt.Println(g.Board().Layout())
		fmt.Println(g.Board().Draw())
	}
	logger.Info().Str("state", g.State().String()).Msg("=============== game ended")
	fmt.Println(g.Board().Layout())
	dumpHistory(history)

	return nil
}

func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}

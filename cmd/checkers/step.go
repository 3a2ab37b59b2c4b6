package main

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/game"
)

// step plays random legal moves until the game ends, timing every stage.
func step(layout string, seed uint64, limit int, delay time.Duration) error {
	logger.Info().Uint64("seed", seed).Msg("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesPlay          []time.Duration
		timesState         []time.Duration
	)
	g, err := newGame(layout)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))

	for ply := 0; ply < limit && g.State().IsRunning(); ply++ {
		b := g.Board()
		t1 := time.Now()
		mvs := b.GenerateMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", b.State())
		}
		idx := rng.Intn(len(mvs))
		side := b.Turn()

		t1 = time.Now()
		if err := g.PlayMove(idx); err != nil {
			return err
		}
		t2 = time.Now()
		timesPlay = append(timesPlay, t2.Sub(t1))

		t1 = time.Now()
		b.UpdateState()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, side, mvs[idx])
		fmt.Println(b.Draw())
		fmt.Println(b.Layout())
		fmt.Println(b.DebugString())
		<-time.After(delay)
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(g.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("play: ", avg(timesPlay))
	fmt.Println("state:", avg(timesState))
	return nil
}

func newGame(layout string) (*game.Game, error) {
	b, err := board.NewBoard(board.WithLayoutString(layout))
	if err != nil {
		return nil, err
	}
	return game.NewGame(game.WithBoard(b), game.WithLogger(logger))
}

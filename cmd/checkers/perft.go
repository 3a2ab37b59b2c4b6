package main

import (
	"github.com/daystram/checkers/bench"
)

func perft(depth int, layout string, parallel bool) error {
	logger.Info().Int("depth", depth).Bool("parallel", parallel).Msg("============ perft")

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			logger.Info().Msg(s)
		}
	}()

	_, err := bench.Perft(depth, layout, parallel, true, out)
	close(out)
	<-done
	return err
}

package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/checkers/board"
)

// Counters tallies the leaves of a perft run.
type Counters struct {
	Nodes    uint64
	Captures uint64 // leaf moves capturing at least one piece
	Jumps    uint64 // pieces taken over all leaf moves
	Promotes uint64
}

func (c *Counters) add(mvs []board.Move) {
	c.Nodes += uint64(len(mvs))
	for _, mv := range mvs {
		if mv.IsCapture() {
			c.Captures++
			c.Jumps += uint64(len(mv.Captures))
		}
		if mv.Promotes {
			c.Promotes++
		}
	}
}

func (c *Counters) addAtomic(o *Counters) {
	atomic.AddUint64(&c.Nodes, o.Nodes)
	atomic.AddUint64(&c.Captures, o.Captures)
	atomic.AddUint64(&c.Jumps, o.Jumps)
	atomic.AddUint64(&c.Promotes, o.Promotes)
}

// Perft walks every legal line to depth from the layout, reporting per-root-move subtotals
// when verbose, followed by a summary line. out may be nil.
func Perft(depth int, layout string, parallel, verbose bool, out chan<- string) (Counters, error) {
	b, err := board.NewBoard(
		board.WithLayoutString(layout),
	)
	if err != nil {
		return Counters{}, err
	}
	return PerftBoard(depth, b, parallel, verbose, out), nil
}

// PerftBoard runs perft on a clone of b, so its history and draw counters take part.
// Lines stop at positions where the game is over.
func PerftBoard(depth int, b *board.Board, parallel, verbose bool, out chan<- string) Counters {
	var c Counters
	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b.Clone(), depth, verbose, out, &c)
	end := time.Now()

	send(out, message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d jmp=%d pro=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/(end.Sub(start)+1).Seconds()), c.Captures, c.Jumps, c.Promotes, end.Sub(start).Seconds()))

	return c
}

type perftFunc func(b *board.Board, d int, verbose bool, out chan<- string, c *Counters) uint64

// runPerft plays and reverts moves on a single board.
func runPerft(b *board.Board, d int, verbose bool, out chan<- string, c *Counters) uint64 {
	mvs, leaves, done := expand(b, d, verbose, out, c)
	if done {
		return leaves
	}

	var sum uint64
	for _, mv := range mvs {
		if err := mv.Play(b); err != nil {
			panic(fmt.Sprintf("perft: cannot play %s: %v", mv, err))
		}
		child := walk(b, d-1, c)
		if err := b.Undo(); err != nil {
			panic(fmt.Sprintf("perft: cannot undo %s: %v", mv, err))
		}
		if verbose {
			send(out, fmt.Sprintf("%s: %d", mv, child))
		}
		sum += child
	}
	return sum
}

// runPerftParallel searches every root move on its own clone.
func runPerftParallel(b *board.Board, d int, verbose bool, out chan<- string, c *Counters) uint64 {
	mvs, leaves, done := expand(b, d, verbose, out, c)
	if done {
		return leaves
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range mvs {
		mv := mv
		bb := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := mv.Play(bb); err != nil {
				panic(fmt.Sprintf("perft: cannot play %s: %v", mv, err))
			}
			var local Counters
			child := walk(bb, d-1, &local)
			c.addAtomic(&local)
			if verbose {
				send(out, fmt.Sprintf("%s: %d", mv, child))
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// expand handles the root cases that need no recursion: depth 0, a finished game and depth 1,
// where the root moves are the leaves. When done, leaves holds the node count of the root.
func expand(b *board.Board, d int, verbose bool, out chan<- string, c *Counters) (mvs []board.Move, leaves uint64, done bool) {
	if d == 0 {
		c.Nodes++
		return nil, 1, true
	}
	b.UpdateState()
	if !b.State().IsRunning() {
		return nil, 0, true
	}
	mvs = b.GenerateMoves()
	if d > 1 {
		return mvs, 0, false
	}
	c.add(mvs)
	if verbose {
		for _, mv := range mvs {
			send(out, fmt.Sprintf("%s: 1", mv))
		}
	}
	return mvs, uint64(len(mvs)), true
}

func walk(b *board.Board, d int, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	b.UpdateState()
	if !b.State().IsRunning() {
		return 0
	}
	mvs := b.GenerateMoves()
	if d == 1 {
		c.add(mvs)
		return uint64(len(mvs))
	}

	var sum uint64
	for _, mv := range mvs {
		if err := mv.Play(b); err != nil {
			panic(fmt.Sprintf("perft: cannot play %s: %v", mv, err))
		}
		sum += walk(b, d-1, c)
		if err := b.Undo(); err != nil {
			panic(fmt.Sprintf("perft: cannot undo %s: %v", mv, err))
		}
	}
	return sum
}

func send(out chan<- string, s string) {
	if out != nil {
		out <- s
	}
}

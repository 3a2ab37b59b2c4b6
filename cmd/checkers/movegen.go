package main

import (
	"fmt"
	"strconv"

	"github.com/daystram/checkers/board"
)

func movegen(layout string, draw bool) error {
	logger.Info().Msg("============ movegen")
	b, err := board.NewBoard(board.WithLayoutString(layout))
	if err != nil {
		return err
	}
	b.UpdateState()
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State())
	dumpMoves(b)

	if draw {
		for _, mv := range b.GenerateMoves() {
			if err := mv.Play(b); err != nil {
				return err
			}
			fmt.Println(mv)
			fmt.Println(b.Draw())
			fmt.Println(b.Layout())
			if err := b.Undo(); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s %s => %s (cap=%d) (pro=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, b.Piece(mv.From).Name(), mv.From.Coordinate(), mv.To.Coordinate(), len(mv.Captures), mv.Promotes)
	}
}

package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/checkers/board"
)

func init() {
	logger = zerolog.Nop()
}

func TestModes(t *testing.T) {
	require.NoError(t, movegen(board.DefaultLayout, true))
	require.NoError(t, step(board.DefaultLayout, 1, 20, 0))
	require.NoError(t, search("8/8/8/2r1r3/8/2r1r3/3B4/8 b", 4, 2, time.Second))
	require.NoError(t, perft(3, board.DefaultLayout, true))
}

func TestModesInvalidLayout(t *testing.T) {
	for _, err := range []error{
		movegen("8/8 b", false),
		step("8/8 b", 1, 1, 0),
		search("8/8 b", 1, 1, time.Second),
		perft(1, "8/8 b", false),
	} {
		assert.ErrorIs(t, err, board.ErrInvalidLayout)
	}
}

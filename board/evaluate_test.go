package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreOpening(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Score())

	// Blue gains a move by opening the back rank, scored from Red's side
	require.NoError(t, b.Move(42, 35))
	assert.Equal(t, -2.0, b.Score())
	assert.Equal(t, StateRunning, b.State())
}

func TestScoreEndgame(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "1r6/8/8/8/3B4/8/8/8 b")
	assert.InDelta(t, 8.125, b.Score(), 1e-9)
}

func TestScoreMirrorSymmetry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		layout string
	}{
		{name: "default", layout: DefaultLayout},
		{name: "king loop", layout: "8/8/8/2r1r3/8/2r1r3/3B4/8 b"},
		{name: "midgame", layout: "1r1r4/r7/3r1R2/8/1b6/B7/1b1b4/8 r"},
		{name: "endgame", layout: "1r6/8/8/8/3B4/8/8/8 b"},
		{name: "forced capture", layout: "8/8/8/8/1r6/2b3b1/8/8 b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t, tt.layout)
			m := b.Mirror()
			assert.InDelta(t, b.Score(), m.Score(), 1e-9)
		})
	}
}

func TestScoreTerminal(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "8/8/8/2r5/1r6/b7/8/8 b")
	assert.True(t, math.IsInf(b.Score(), -1))
	assert.Equal(t, StateWinRed, b.State())

	// UpdateState only detects a loss of the side to move, so the mirror scores -Inf as well.
	// The +Inf side is reached through negation, see TestSearchWinningCapture in engine.
	m := newTestBoard(t, "8/8/8/2r5/1r6/b7/8/8 b").Mirror()
	assert.True(t, math.IsInf(m.Score(), -1))
	winner, ok := m.Winner()
	require.True(t, ok)
	assert.Equal(t, SideBlue, winner)
}

func TestEndgameWeight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pieces int
		want   float64
	}{
		{pieces: 0, want: 1},
		{pieces: 6, want: 0.5},
		{pieces: 12, want: 0},
		{pieces: 15, want: 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, endgameWeight(tt.pieces), 1e-9, "pieces=%d", tt.pieces)
	}
}

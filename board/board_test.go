package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/checkers/position"
)

func newTestBoard(t *testing.T, layout string) *Board {
	t.Helper()
	b, err := NewBoard(WithLayoutString(layout))
	require.NoError(t, err)
	return b
}

func TestNewBoardDefault(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	assert.Equal(t, DefaultLayout, b.Layout())
	assert.Equal(t, SideBlue, b.Turn())
	assert.Equal(t, StateRunning, b.State())
	assert.Equal(t, 0, b.MovesWithoutKills())
	_, ok := b.LastMove()
	assert.False(t, ok)

	var blue, red int
	for pos, p := range b.AllPieces() {
		assert.True(t, pos.IsPlayable(), "piece on non-playable cell %d", pos)
		switch p {
		case PieceBlueMan:
			blue++
		case PieceRedMan:
			red++
		default:
			t.Errorf("unexpected piece %s on %d", p, pos)
		}
	}
	assert.Equal(t, 12, blue)
	assert.Equal(t, 12, red)
}

func TestNewBoardOptions(t *testing.T) {
	t.Parallel()
	var cells [TotalCells]Piece
	cells[0] = PieceBlueKing // non-playable cells are accepted as-is
	cells[10] = PieceRedMan

	b, err := NewBoard(WithLayout(cells), WithTurn(SideRed))
	require.NoError(t, err)
	assert.Equal(t, cells, b.Cells())
	assert.Equal(t, SideRed, b.Turn())

	b, err = NewBoard(WithLayoutString("8/8/8/8/8/8/8/8 r"), WithTurn(SideBlue))
	require.NoError(t, err)
	assert.Equal(t, SideBlue, b.Turn())

	_, err = NewBoard(WithLayoutString("invalid"))
	assert.ErrorIs(t, err, ErrInvalidLayout)

	// an empty layout is malformed, not the default one
	_, err = NewBoard(WithLayoutString(""))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestAllPiecesStopsEarly(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	var visited []position.Pos
	for pos := range b.AllPieces() {
		visited = append(visited, pos)
		if len(visited) == 3 {
			break
		}
	}
	assert.Equal(t, []position.Pos{1, 3, 5}, visited)

	// restartable
	count := 0
	for range b.AllPieces() {
		count++
	}
	assert.Equal(t, 24, count)
}

func TestMoveErrors(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	before := b.Hash()

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{name: "occupied destination", run: func() error { return b.Move(42, 49) }, wantErr: ErrOccupiedDestination},
		{name: "missing piece", run: func() error { return b.Move(33, 24) }, wantErr: ErrMissingPiece},
		{name: "invalid cell", run: func() error { return b.Move(42, 64) }, wantErr: ErrInvalidCell},
		{name: "kill empty", run: func() error { return b.Kill(33) }, wantErr: ErrMissingPiece},
		{name: "kill without history", run: func() error { return b.Kill(42) }, wantErr: ErrEmptyHistory},
		{name: "promote inner row", run: func() error { return b.Promote(42) }, wantErr: ErrInvalidPromotionRank},
		{name: "promote empty edge", run: func() error { return b.Promote(0) }, wantErr: ErrMissingPiece},
		{name: "undo empty history", run: func() error { return b.Undo() }, wantErr: ErrEmptyHistory},
	}
	for _, tt := range tests {
		err := tt.run()
		assert.ErrorIs(t, err, tt.wantErr, tt.name)
	}

	// validation failures never mutate
	assert.Equal(t, before, b.Hash())
	assert.Equal(t, 0, b.Ply())
	assert.Equal(t, SideBlue, b.Turn())
}

func TestMoveKillUndo(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "8/8/8/8/1r6/2b5/8/8 b")
	before := b.Hash()

	require.NoError(t, b.Move(42, 24))
	assert.Equal(t, SideRed, b.Turn())
	assert.Equal(t, 1, b.MovesWithoutKills())

	require.NoError(t, b.Kill(33))
	assert.Equal(t, PieceEmpty, b.Piece(33))
	assert.Equal(t, 0, b.MovesWithoutKills())

	last, ok := b.LastMove()
	require.True(t, ok)
	assert.Equal(t, position.Pos(42), last.From)
	assert.Equal(t, position.Pos(24), last.To)
	assert.Equal(t, []Capture{{Pos: 33, Piece: PieceRedMan}}, last.Captures)
	assert.Equal(t, 0, last.MovesWithoutKills)

	require.NoError(t, b.Undo())
	assert.Equal(t, before, b.Hash())
	assert.Equal(t, SideBlue, b.Turn())
	assert.Equal(t, 0, b.MovesWithoutKills())
	assert.Equal(t, 0, b.Ply())
}

func TestPromote(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "8/2b5/8/8/8/8/8/8 b")

	require.NoError(t, b.Move(10, 1))
	require.NoError(t, b.Promote(1))
	assert.Equal(t, PieceBlueKing, b.Piece(1))
	last, _ := b.LastMove()
	assert.True(t, last.Promoted)

	// only doubles once
	assert.ErrorIs(t, b.Promote(1), ErrAlreadyKing)
	assert.Equal(t, PieceBlueKing, b.Piece(1))

	require.NoError(t, b.Undo())
	assert.Equal(t, PieceBlueMan, b.Piece(10))
	assert.Equal(t, PieceEmpty, b.Piece(1))
}

func TestUndoIsInverseOfPlay(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	type snapshot struct {
		hash  string
		kills int
		turn  Side
		state State
	}
	var stack []snapshot
	for ply := 0; ply < 60; ply++ {
		mvs := b.GenerateMoves()
		if len(mvs) == 0 {
			break
		}
		for _, mv := range mvs {
			before := snapshot{b.Hash(), b.MovesWithoutKills(), b.Turn(), b.State()}
			require.NoError(t, mv.Play(b))
			require.NoError(t, b.Undo())
			require.Equal(t, before, snapshot{b.Hash(), b.MovesWithoutKills(), b.Turn(), b.State()}, "move %s", mv)
		}
		stack = append(stack, snapshot{b.Hash(), b.MovesWithoutKills(), b.Turn(), b.State()})
		require.NoError(t, mvs[ply%len(mvs)].Play(b))
	}
	for i := len(stack) - 1; i >= 0; i-- {
		require.NoError(t, b.Undo())
		require.Equal(t, stack[i], snapshot{b.Hash(), b.MovesWithoutKills(), b.Turn(), b.State()})
	}
	assert.Equal(t, DefaultLayout, b.Layout())
}

func TestUndoRestoresState(t *testing.T) {
	t.Parallel()
	// Red captures Blue's last piece
	b := newTestBoard(t, "8/8/8/8/8/1r6/2b5/8 r")
	mvs := b.GenerateMoves()
	require.Len(t, mvs, 1)
	require.NoError(t, mvs[0].Play(b))

	b.UpdateState()
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, SideRed, winner)

	require.NoError(t, b.Undo())
	assert.Equal(t, StateRunning, b.State())
}

func TestReset(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	require.NoError(t, b.Move(42, 33))
	b.Clear()
	assert.Equal(t, [TotalCells]Piece{}, b.Cells())
	assert.Equal(t, 1, b.Ply())

	b.Reset()
	assert.Equal(t, DefaultLayout, b.Layout())
	assert.Equal(t, 0, b.Ply())
	assert.Equal(t, 0, b.MovesWithoutKills())
	assert.Equal(t, StateRunning, b.State())
}

// kingCycle walks a king around four cells so no two consecutive moves share a cell pair.
func kingCycle(cells ...position.Pos) func(i int) (position.Pos, position.Pos) {
	return func(i int) (position.Pos, position.Pos) {
		return cells[i%len(cells)], cells[(i+1)%len(cells)]
	}
}

func TestDrawByAttrition(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "3R4/8/8/8/8/2B5/8/8 b")
	blue := kingCycle(42, 35, 44, 51)
	red := kingCycle(3, 10, 19, 12)

	for i := 0; i < DrawMovesWithoutKills; i++ {
		require.False(t, b.IsDraw(), "drawn after %d moves", i)
		from, to := blue(i / 2)
		if i%2 == 1 {
			from, to = red(i / 2)
		}
		require.NoError(t, b.Move(from, to))
	}

	assert.True(t, b.IsDraw())
	assert.Equal(t, StateDraw, b.State())
	_, ok := b.Winner()
	assert.False(t, ok)
	assert.Equal(t, 0.0, b.Score())
}

func TestDrawByRepetition(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "3R4/8/8/8/8/2B5/8/8 b")
	shuffle := [][2]position.Pos{{42, 35}, {3, 10}, {35, 42}, {10, 3}, {42, 35}, {3, 10}}

	for i, mv := range shuffle {
		require.False(t, b.IsDraw(), "drawn after %d moves", i)
		require.NoError(t, b.Move(mv[0], mv[1]))
	}
	assert.True(t, b.IsDraw())
	assert.False(t, b.State().IsRunning())
	assert.Less(t, b.MovesWithoutKills(), DrawMovesWithoutKills)
}

func TestRepetitionOnlyCheckedForFirstSide(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, "3R4/8/8/8/8/2B5/8/8 r")
	shuffle := [][2]position.Pos{{3, 10}, {42, 35}, {10, 3}, {35, 42}, {3, 10}, {42, 35}}

	for _, mv := range shuffle {
		require.NoError(t, b.Move(mv[0], mv[1]))
	}
	// Red to move again
	assert.False(t, b.IsDraw())
	require.NoError(t, b.Move(10, 3))
	assert.True(t, b.IsDraw())
}

func TestUpdateStateNoMoveLoss(t *testing.T) {
	t.Parallel()
	// the Blue man on 40 is blocked and cannot jump
	b := newTestBoard(t, "8/8/8/2r5/1r6/b7/8/8 b")
	b.UpdateState()

	assert.Equal(t, StateWinRed, b.State())
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, SideRed, winner)
}

func TestUpdateStateContinues(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	b.UpdateState()
	assert.Equal(t, StateRunning, b.State())
}

func TestHash(t *testing.T) {
	t.Parallel()
	b1, err := NewBoard()
	require.NoError(t, err)
	b2, err := NewBoard()
	require.NoError(t, err)

	for _, mv := range [][2]position.Pos{{42, 33}, {17, 26}, {46, 39}, {21, 28}} {
		require.NoError(t, b1.Move(mv[0], mv[1]))
	}
	for _, mv := range [][2]position.Pos{{46, 39}, {21, 28}, {42, 33}, {17, 26}} {
		require.NoError(t, b2.Move(mv[0], mv[1]))
	}
	assert.Equal(t, b1.Hash(), b2.Hash())
	assert.Len(t, b1.Hash(), int(TotalCells))

	b3 := newTestBoard(t, b1.Layout())
	assert.Equal(t, b1.Hash(), b3.Hash())

	require.NoError(t, b2.Undo())
	assert.NotEqual(t, b1.Hash(), b2.Hash())
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	require.NoError(t, b.Move(42, 33))

	bb := b.Clone()
	require.NoError(t, bb.Move(17, 26))
	require.NoError(t, bb.Undo())
	require.NoError(t, bb.Undo())

	assert.Equal(t, 1, b.Ply())
	assert.Equal(t, PieceBlueMan, b.Piece(33))
	assert.Equal(t, DefaultLayout, bb.Layout())
}

func TestMirror(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	m := b.Mirror()
	assert.Equal(t, b.Hash(), m.Hash())
	assert.Equal(t, SideRed, m.Turn())

	b = newTestBoard(t, "8/8/8/2r5/1r6/b7/8/8 b")
	m = b.Mirror()
	assert.Equal(t, PieceRedMan, m.Piece(23))
	assert.Equal(t, PieceBlueMan, m.Piece(30))
	assert.Equal(t, PieceBlueMan, m.Piece(37))
	assert.Equal(t, b.Layout(), m.Mirror().Layout())
}

func TestNotation(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	n, err := b.Notation(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = b.Notation(0)
	assert.ErrorIs(t, err, position.ErrUnknownNotation)
}

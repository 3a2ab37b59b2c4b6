package engine

import (
	"github.com/daystram/checkers/board"
)

type EntryType uint8

const (
	DefaultHashTableSize = 1 << 20 // number of entries

	EntryTypeUnknown EntryType = iota
	EntryTypeExact
	EntryTypeLowerBound
	EntryTypeUpperBound
)

type TranspositionTable struct {
	table map[string]entry
	size  int

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	typ   EntryType
	mv    board.Move
	score float64
	depth int
}

func NewTranspositionTable(size int) *TranspositionTable {
	if size <= 0 {
		size = DefaultHashTableSize
	}
	return &TranspositionTable{
		table: make(map[string]entry),
		size:  size,
	}
}

// key identifies a position by its cells and the side to move.
func key(b *board.Board) string {
	return b.Hash() + b.Turn().String()
}

// Set stores the entry unless the table is full or holds a deeper result for the position.
func (t *TranspositionTable) Set(b *board.Board, typ EntryType, mv board.Move, score float64, depth int) {
	k := key(b)
	e, ok := t.table[k]
	if !ok && len(t.table) >= t.size {
		return
	}
	if ok && e.depth > depth {
		return
	}
	t.writes++
	t.table[k] = entry{
		typ:   typ,
		mv:    mv,
		score: score,
		depth: depth,
	}
}

func (t *TranspositionTable) Get(b *board.Board) (EntryType, board.Move, float64, int, bool) {
	e, ok := t.table[key(b)]
	if !ok {
		t.misses++
		return EntryTypeUnknown, board.Move{}, 0, 0, false
	}
	t.hits++
	return e.typ, e.mv, e.score, e.depth, true
}

func (t *TranspositionTable) Len() int {
	return len(t.table)
}

func (t *TranspositionTable) Clear() {
	clear(t.table)
	t.ResetStats()
}

func (t *TranspositionTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *TranspositionTable) Stats() (int, int, int) {
	return t.hits, t.misses, t.writes
}

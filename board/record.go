package board

import "github.com/daystram/checkers/position"

// Record is a history entry holding everything needed to revert one move.
type Record struct {
	From, To          position.Pos
	Captures          []Capture
	Promoted          bool
	MovesWithoutKills int

	state State
}

// sameMove compares the unordered start/end pair of two records.
func (r Record) sameMove(o Record) bool {
	return (r.From == o.From && r.To == o.To) || (r.From == o.To && r.To == o.From)
}

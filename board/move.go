package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/checkers/position"
)

// Capture is a piece taken during a move, together with the cell it stood on.
type Capture struct {
	Pos   position.Pos
	Piece Piece
}

// Move is a candidate play. Captures are ordered as they are jumped.
type Move struct {
	From, To position.Pos
	Captures []Capture
	Promotes bool
}

// Play applies the move onto b. Every step lands on the same history record,
// so a single Undo reverts the whole move.
func (m Move) Play(b *Board) error {
	if err := b.Move(m.From, m.To); err != nil {
		return err
	}
	for _, c := range m.Captures {
		if err := b.Kill(c.Pos); err != nil {
			return err
		}
	}
	if m.Promotes {
		if err := b.Promote(m.To); err != nil {
			return err
		}
	}
	return nil
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

func (m Move) Equals(n Move) bool {
	if m.From != n.From || m.To != n.To || m.Promotes != n.Promotes || len(m.Captures) != len(n.Captures) {
		return false
	}
	for i := range m.Captures {
		if m.Captures[i] != n.Captures[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	if !m.IsCapture() {
		return m.From.String() + "-" + m.To.String()
	}
	// landing cells are recovered from the jumped cells: each landing mirrors the previous cell over the capture
	nt := m.From.String()
	at := m.From
	for _, c := range m.Captures {
		at = 2*c.Pos - at
		nt += "x" + at.String()
	}
	if m.Promotes {
		nt += "K"
	}
	return nt
}

// ParseMoveNotation reads the start and end cells from "11-15" or "15x24x31" style notation.
func ParseMoveNotation(s string) (from, to position.Pos, err error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "K")
	segments := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == 'x' })
	if len(segments) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", position.ErrUnknownNotation, s)
	}
	parse := func(seg string) (position.Pos, error) {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", position.ErrUnknownNotation, seg)
		}
		return position.NewPosFromNotation(n)
	}
	if from, err = parse(segments[0]); err != nil {
		return 0, 0, err
	}
	if to, err = parse(segments[len(segments)-1]); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

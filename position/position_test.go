package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation int
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok first",
			notation: 1,
			want:     Pos(1),
		},
		{
			name:     "ok second row",
			notation: 5,
			want:     Pos(8),
		},
		{
			name:     "ok last",
			notation: 32,
			want:     Pos(62),
		},
		{
			name:     "bad zero",
			notation: 0,
			wantErr:  ErrUnknownNotation,
		},
		{
			name:     "bad negative",
			notation: -4,
			wantErr:  ErrUnknownNotation,
		},
		{
			name:     "bad overflow",
			notation: 33,
			wantErr:  ErrUnknownNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pos     Pos
		want    int
		wantErr error
	}{
		{name: "top row", pos: Pos(7), want: 4},
		{name: "odd row", pos: Pos(14), want: 8},
		{name: "bottom row", pos: Pos(56), want: 29},
		{name: "light cell", pos: Pos(0), wantErr: ErrUnknownNotation},
		{name: "light cell bottom", pos: Pos(63), wantErr: ErrUnknownNotation},
		{name: "below range", pos: Pos(-1), wantErr: ErrUnknownNotation},
		{name: "above range", pos: Pos(64), wantErr: ErrUnknownNotation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.pos.Notation()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for n := 1; n <= TotalPlayable; n++ {
		p, err := NewPosFromNotation(n)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", n, err)
		}
		if !p.IsPlayable() {
			t.Errorf("cell %d for notation %d is not playable", p, n)
		}
		got, err := p.Notation()
		if err != nil || got != n {
			t.Errorf("unexpected notation for cell %d: got=%d err=%v want=%d", p, got, err, n)
		}
	}
}

func TestCoordinate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  Pos
		want string
	}{
		{pos: Pos(0), want: "a8"},
		{pos: Pos(7), want: "h8"},
		{pos: Pos(56), want: "a1"},
		{pos: Pos(42), want: "c3"},
		{pos: Pos(64), want: ""},
	}
	for _, tt := range tests {
		if got := tt.pos.Coordinate(); got != tt.want {
			t.Errorf("unexpected coordinate for %d: got=%q want=%q", tt.pos, got, tt.want)
		}
	}
}

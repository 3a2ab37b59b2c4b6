package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/checkers/position"
)

var (
	colorCellLight = color.New(color.BgHiWhite)
	colorCellDark  = color.New(color.BgGreen)
	colorBlue      = color.New(color.FgHiBlue, color.BgGreen, color.Bold)
	colorRed       = color.New(color.FgHiRed, color.BgGreen, color.Bold)
	colorLabel     = color.New(color.Bold)
)

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells[position.NewPosFromRowCol(y, x)].Symbol()
			if sym == "." {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPosFromRowCol(y, x)
			p := b.cells[pos]
			cell := fmt.Sprintf(" %s ", p.SymbolUnicode())
			switch {
			case p.Side() == SideBlue:
				cell = colorBlue.Sprint(cell)
			case p.Side() == SideRed:
				cell = colorRed.Sprint(cell)
			case pos.IsPlayable():
				cell = colorCellDark.Sprint(cell)
			default:
				cell = colorCellLight.Sprint(cell)
			}
			_, _ = builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\nkill: %4d\nply:  %4d\nstat: %s", b.turn, b.movesWithoutKills, b.Ply(), b.state)
}

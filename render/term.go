// Package render holds debug renderers for occupancy snapshots and raw
// bitboards. Nothing here is part of the functional contract.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lichfield/attackgen/adapter"
	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/square"
)

var (
	labelStyle = color.New(color.Bold)
	darkCell   = color.New(color.FgBlack, color.BgGreen)
	lightCell  = color.New(color.FgBlack, color.BgHiWhite)
	markCell   = color.New(color.FgBlack, color.BgRed)
)

// Board renders the occupancy as a colored board, one unicode glyph per
// piece.
func Board(occ adapter.Occupancy) string {
	return board(occ, 0)
}

// BoardMarked renders the occupancy with the squares of mark highlighted,
// typically an attack mask over the position that produced it.
func BoardMarked(occ adapter.Occupancy, mark attack.Bitboard) string {
	return board(occ, mark)
}

func board(occ adapter.Occupancy, mark attack.Bitboard) string {
	builder := strings.Builder{}
	for y := square.Width - 1; y >= 0; y-- {
		_, _ = builder.WriteString(labelStyle.Sprintf(" %d ", y+1))
		for x := square.Square(0); x < square.Width; x++ {
			pos := y*square.Width + x
			s, p := occ.PieceAt(pos)
			sym := " "
			if p != attack.PieceUnknown {
				sym = p.SymbolUnicode(s)
			}
			cell := lightCell
			if x%2^y%2 == 0 {
				cell = darkCell
			}
			if mark.Get(pos) {
				cell = markCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := square.Square(0); x < square.Width; x++ {
		_, _ = builder.WriteString(labelStyle.Sprintf(" %c ", 'a'+x))
	}
	return builder.String()
}

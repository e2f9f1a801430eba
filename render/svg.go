package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lichfield/attackgen/adapter"
	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/square"
)

const (
	cellSize = 56
	boardPad = 16
)

const (
	darkFill  = "fill:#769656"
	lightFill = "fill:#eeeed2"
	markFill  = "fill:#d08770"
	glyphText = "font-size:40px;text-anchor:middle;font-family:sans-serif"
	labelText = "font-size:14px;text-anchor:middle;font-family:sans-serif;fill:#555555"
)

// SVG writes the occupancy as an SVG board.
func SVG(w io.Writer, occ adapter.Occupancy) {
	BoardSVG(w, occ, 0)
}

// BitboardSVG writes a single bitmask as an SVG board with its set squares
// highlighted.
func BitboardSVG(w io.Writer, bm attack.Bitboard) {
	BoardSVG(w, adapter.Occupancy{}, bm)
}

// BoardSVG writes the occupancy with the squares of mark highlighted.
func BoardSVG(w io.Writer, occ adapter.Occupancy, mark attack.Bitboard) {
	size := int(square.Width)*cellSize + 2*boardPad
	canvas := svg.New(w)
	canvas.Start(size, size)
	for y := square.Square(0); y < square.Width; y++ {
		for x := square.Square(0); x < square.Width; x++ {
			pos := y*square.Width + x
			// rank 8 renders at the top
			px := boardPad + int(x)*cellSize
			py := boardPad + int(square.Width-1-y)*cellSize
			fill := lightFill
			if x%2^y%2 == 0 {
				fill = darkFill
			}
			if mark.Get(pos) {
				fill = markFill
			}
			canvas.Rect(px, py, cellSize, cellSize, fill)
			if s, p := occ.PieceAt(pos); p != attack.PieceUnknown {
				canvas.Text(px+cellSize/2, py+cellSize*3/4, p.SymbolUnicode(s), glyphText)
			}
		}
	}
	for x := square.Square(0); x < square.Width; x++ {
		canvas.Text(boardPad+int(x)*cellSize+cellSize/2, size-1, string(rune('a'+x)), labelText)
	}
	canvas.End()
}

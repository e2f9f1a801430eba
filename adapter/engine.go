package adapter

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lichfield/attackgen/attack"
)

// EngineSource adapts a dragontoothmg board to the Source interface.
// dragontoothmg shares this module's LERF square convention, so its
// bitboards pass through untranslated.
type EngineSource struct {
	board *dragontoothmg.Board
}

func NewEngineSource(b *dragontoothmg.Board) *EngineSource {
	return &EngineSource{board: b}
}

func (e *EngineSource) Occupancy() (Occupancy, error) {
	var occ Occupancy
	halves := []struct {
		side attack.Side
		bb   *dragontoothmg.Bitboards
	}{
		{attack.SideWhite, &e.board.White},
		{attack.SideBlack, &e.board.Black},
	}
	for _, h := range halves {
		occ[h.side][attack.PiecePawn] = attack.Bitboard(h.bb.Pawns)
		occ[h.side][attack.PieceBishop] = attack.Bitboard(h.bb.Bishops)
		occ[h.side][attack.PieceKnight] = attack.Bitboard(h.bb.Knights)
		occ[h.side][attack.PieceRook] = attack.Bitboard(h.bb.Rooks)
		occ[h.side][attack.PieceQueen] = attack.Bitboard(h.bb.Queens)
		occ[h.side][attack.PieceKing] = attack.Bitboard(h.bb.Kings)
	}
	return occ, nil
}

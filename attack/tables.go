package attack

import (
	"github.com/lichfield/attackgen/square"
)

// Tables holds the precomputed per-square attack masks of the jump pieces
// (knight, king) and the sliding pieces (bishop, rook, queen). A Tables
// value is immutable after NewTables returns and is safe for unlocked
// concurrent reads.
type Tables struct {
	knight [square.Count]Bitboard
	king   [square.Count]Bitboard
	bishop [square.Count]Bitboard
	rook   [square.Count]Bitboard
	queen  [square.Count]Bitboard
}

var (
	knightOffsets = [8]square.Square{6, 10, 15, 17, -6, -10, -15, -17}
	kingOffsets   = [8]square.Square{1, 7, 8, 9, -1, -7, -8, -9}
)

// NewTables computes all 64-entry attack tables. Sliding masks are
// empty-board pseudo-attacks; blocking by intervening pieces is the rules
// engine's concern.
func NewTables() *Tables {
	t := &Tables{}
	for s := square.Square(0); s < square.Count; s++ {
		t.knight[s] = jumpMask(s, knightOffsets, 2)
		t.king[s] = jumpMask(s, kingOffsets, 1)
		t.bishop[s] = Union(
			Ray(s, NorthEast),
			Ray(s, NorthWest),
			Ray(s, SouthEast),
			Ray(s, SouthWest),
		)
		t.rook[s] = Union(
			Ray(s, North),
			Ray(s, South),
			Ray(s, East),
			Ray(s, West),
		)
		t.queen[s] = t.bishop[s] | t.rook[s]
	}
	return t
}

// jumpMask unions the offset squares reachable from s. An offset is valid
// only if the destination stays on the board and its file differs from the
// origin file by at most maxFileDelta, which rejects offsets that wrap
// across the a/h file boundary.
func jumpMask(s square.Square, offsets [8]square.Square, maxFileDelta square.Square) Bitboard {
	var bb Bitboard
	for _, off := range offsets {
		to := s + off
		if !to.Valid() {
			continue
		}
		fd := to.File() - s.File()
		if fd < 0 {
			fd = -fd
		}
		if fd > maxFileDelta {
			continue
		}
		bb = bb.Set(to)
	}
	return bb
}

// Knight returns the knight attack mask of s. s must be a valid square.
func (t *Tables) Knight(s square.Square) Bitboard {
	return t.knight[s]
}

// King returns the king attack mask of s. s must be a valid square.
func (t *Tables) King(s square.Square) Bitboard {
	return t.king[s]
}

// Bishop returns the empty-board bishop attack mask of s. s must be a valid
// square.
func (t *Tables) Bishop(s square.Square) Bitboard {
	return t.bishop[s]
}

// Rook returns the empty-board rook attack mask of s. s must be a valid
// square.
func (t *Tables) Rook(s square.Square) Bitboard {
	return t.rook[s]
}

// Queen returns the empty-board queen attack mask of s. s must be a valid
// square.
func (t *Tables) Queen(s square.Square) Bitboard {
	return t.queen[s]
}

// Lookup returns the attack table entry of p at s. Pawns have no table;
// their attacks are computed by PawnAttacks. s must be a valid square.
func (t *Tables) Lookup(p Piece, s square.Square) Bitboard {
	switch p {
	case PieceKnight:
		return t.knight[s]
	case PieceKing:
		return t.king[s]
	case PieceBishop:
		return t.bishop[s]
	case PieceRook:
		return t.rook[s]
	case PieceQueen:
		return t.queen[s]
	default:
		return 0
	}
}

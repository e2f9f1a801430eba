package attack

// Attacks returns the union of the per-square attack masks of p over every
// set bit of occ. Enumeration runs lowest to highest; order does not matter
// since union is commutative. Pawn occupancies go through PawnAttacks
// instead, since pawn attacks depend on the side.
func (t *Tables) Attacks(p Piece, occ Bitboard) Bitboard {
	var atk Bitboard
	for bb := occ; bb != 0; bb &= bb - 1 {
		atk |= t.Lookup(p, bb.LS1B())
	}
	return atk
}

// PawnAttacks returns the squares attacked by every pawn of side s in occ.
// A pawn attacks exactly one diagonal square per side, so the result is two
// masked shifts, not a ray cast. Edge files are masked before shifting so
// attacks never wrap between files a and h.
func PawnAttacks(s Side, occ Bitboard) Bitboard {
	switch s {
	case SideWhite:
		return ShiftNE(occ&^maskFile[7]) | ShiftNW(occ&^maskFile[0])
	case SideBlack:
		return ShiftSE(occ&^maskFile[7]) | ShiftSW(occ&^maskFile[0])
	default:
		return 0
	}
}

package attack

import (
	"testing"

	"github.com/lichfield/attackgen/square"
)

func TestAttacksUnion(t *testing.T) {
	t.Parallel()
	tables := NewTables()
	occ := Bitboard(0).Set(0).Set(63) // knights on a1 and h8
	got := tables.Attacks(PieceKnight, occ)
	want := tables.Knight(0) | tables.Knight(63)
	if got != want {
		t.Errorf("unexpected aggregated attacks: got=%#x want=%#x", got, want)
	}
	if got.BitCount() != 4 {
		t.Errorf("unexpected attack square count: got=%d want=4", got.BitCount())
	}
}

func TestAttacksEmpty(t *testing.T) {
	t.Parallel()
	tables := NewTables()
	for _, p := range Kinds {
		if got := tables.Attacks(p, 0); got != 0 {
			t.Errorf("expected empty attacks for empty occupancy: piece=%s got=%#x", p, got)
		}
	}
}

func TestAttacksOverlappingMasks(t *testing.T) {
	t.Parallel()
	tables := NewTables()
	// two rooks sharing a rank attack each other's square; the union must
	// stay a plain set
	occ := Bitboard(0).Set(0).Set(7) // a1, h1
	got := tables.Attacks(PieceRook, occ)
	want := tables.Rook(0) | tables.Rook(7)
	if got != want {
		t.Errorf("unexpected aggregated attacks: got=%#x want=%#x", got, want)
	}
}

func TestPawnAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		side Side
		occ  Bitboard
		want Bitboard
	}{
		{
			name: "white center",
			side: SideWhite,
			occ:  Bitboard(0).Set(28), // e4
			want: Bitboard(0).Set(35).Set(37), // d5, f5
		},
		{
			name: "white a-file",
			side: SideWhite,
			occ:  Bitboard(0).Set(8),  // a2
			want: Bitboard(0).Set(17), // b3
		},
		{
			name: "white h-file",
			side: SideWhite,
			occ:  Bitboard(0).Set(15), // h2
			want: Bitboard(0).Set(22), // g3
		},
		{
			name: "black center",
			side: SideBlack,
			occ:  Bitboard(0).Set(35), // d5
			want: Bitboard(0).Set(26).Set(28), // c4, e4
		},
		{
			name: "black a-file",
			side: SideBlack,
			occ:  Bitboard(0).Set(48), // a7
			want: Bitboard(0).Set(41), // b6
		},
		{
			name: "black h-file",
			side: SideBlack,
			occ:  Bitboard(0).Set(55), // h7
			want: Bitboard(0).Set(46), // g6
		},
		{
			name: "white full rank",
			side: SideWhite,
			occ:  RankMask(square.Rank2),
			want: RankMask(square.Rank3),
		},
		{
			name: "black full rank",
			side: SideBlack,
			occ:  RankMask(square.Rank7),
			want: RankMask(square.Rank6),
		},
		{
			name: "unknown side",
			side: SideUnknown,
			occ:  RankMask(square.Rank2),
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PawnAttacks(tt.side, tt.occ); got != tt.want {
				t.Errorf("unexpected pawn attacks: got=%#x want=%#x", got, tt.want)
			}
		})
	}
}

package attack

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lichfield/attackgen/square"
)

// Bitboard is a 64-bit square set in little-endian rank-file (LERF)
// mapping: bit i is set iff square i is a member. Bitboards are immutable
// values; every operation returns a new value.
type Bitboard uint64

var (
	maskFile = [square.Width]Bitboard{
		square.FileA: 0x_01_01_01_01_01_01_01_01,
		square.FileB: 0x_02_02_02_02_02_02_02_02,
		square.FileC: 0x_04_04_04_04_04_04_04_04,
		square.FileD: 0x_08_08_08_08_08_08_08_08,
		square.FileE: 0x_10_10_10_10_10_10_10_10,
		square.FileF: 0x_20_20_20_20_20_20_20_20,
		square.FileG: 0x_40_40_40_40_40_40_40_40,
		square.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRank = [square.Width]Bitboard{
		square.Rank1: 0x_00_00_00_00_00_00_00_FF,
		square.Rank2: 0x_00_00_00_00_00_00_FF_00,
		square.Rank3: 0x_00_00_00_00_00_FF_00_00,
		square.Rank4: 0x_00_00_00_00_FF_00_00_00,
		square.Rank5: 0x_00_00_00_FF_00_00_00_00,
		square.Rank6: 0x_00_00_FF_00_00_00_00_00,
		square.Rank7: 0x_00_FF_00_00_00_00_00_00,
		square.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskSquare [square.Count]Bitboard
)

func init() {
	for s := square.Square(0); s < square.Count; s++ {
		maskSquare[s] = 1 << s
	}
}

// FileMask returns the mask of file f. f must be in [0, 7].
func FileMask(f square.Square) Bitboard {
	return maskFile[f]
}

// RankMask returns the mask of rank r. r must be in [0, 7].
func RankMask(r square.Square) Bitboard {
	return maskRank[r]
}

// SquareMask returns the single-bit mask of s. s must be a valid square.
func SquareMask(s square.Square) Bitboard {
	return maskSquare[s]
}

// Set returns bb with the bit of s forced to 1. s must be a valid square;
// validation belongs to the caller since Set sits on the hot path.
func (bb Bitboard) Set(s square.Square) Bitboard {
	return bb | maskSquare[s]
}

// Clear returns bb with the bit of s forced to 0. Same precondition as Set.
func (bb Bitboard) Clear(s square.Square) Bitboard {
	return bb &^ maskSquare[s]
}

// Get reports whether the bit of s is set. Same precondition as Set.
func (bb Bitboard) Get(s square.Square) bool {
	return bb&maskSquare[s] != 0
}

func ShiftNW(bb Bitboard) Bitboard {
	return bb << 7
}

func ShiftN(bb Bitboard) Bitboard {
	return bb << 8
}

func ShiftNE(bb Bitboard) Bitboard {
	return bb << 9
}

func ShiftE(bb Bitboard) Bitboard {
	return bb << 1
}

func ShiftSE(bb Bitboard) Bitboard {
	return bb >> 7
}

func ShiftS(bb Bitboard) Bitboard {
	return bb >> 8
}

func ShiftSW(bb Bitboard) Bitboard {
	return bb >> 9
}

func ShiftW(bb Bitboard) Bitboard {
	return bb >> 1
}

func Union(bbs ...Bitboard) Bitboard {
	var u Bitboard
	for _, bb := range bbs {
		u |= bb
	}
	return u
}

// LS1B returns the square of the lowest set bit. bb must be non-zero.
func (bb Bitboard) LS1B() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(bb)))
}

func (bb Bitboard) BitCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Dump renders the bitboard as an 8x8 grid, one glyph per set square.
func (bb Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := square.Width; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := square.Square(0); x < square.Width; x++ {
			if bb.Get((y-1)*square.Width + x) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := square.Square(0); x < square.Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %c ", 'a'+x))
	}
	return builder.String()
}

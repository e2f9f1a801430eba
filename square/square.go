package square

import (
	"errors"
)

const (
	// Width is the number of files and ranks the board supports.
	Width Square = 8

	// Count is the total number of squares on the board.
	Count Square = Width * Width
)

const (
	FileA Square = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Square = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

var (
	// ErrOutOfRange represents a square index outside [0, 63].
	ErrOutOfRange = errors.New("square out of range")

	// ErrInvalidNotation represents an invalid algebraic notation.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is a board cell index in little-endian rank-file (LERF) order:
// a1 is 0, b1 is 1, h8 is 63.
type Square int8

// New validates i and returns it as a Square.
func New(i int) (Square, error) {
	if i < 0 || i >= int(Count) {
		return 0, ErrOutOfRange
	}
	return Square(i), nil
}

// NewFromNotation parses algebraic notation such as "e4".
func NewFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return 0, ErrInvalidNotation
	}
	x := Square(n[0] - 'a')
	if x < 0 || Width <= x {
		return 0, ErrInvalidNotation
	}
	y := Square(n[1]-'0') - 1
	if y < 0 || Width <= y {
		return 0, ErrInvalidNotation
	}
	return Width*y + x, nil
}

// Valid reports whether s lies in [0, 63].
func (s Square) Valid() bool {
	return 0 <= s && s < Count
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// File returns the file component in [0, 7], file a being 0.
func (s Square) File() Square {
	return s % Width
}

// Rank returns the rank component in [0, 7], rank 1 being 0.
func (s Square) Rank() Square {
	return s / Width
}

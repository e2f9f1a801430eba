package attack

import (
	"github.com/lichfield/attackgen/square"
)

// Direction identifies one of the 8 compass scan directions.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	DirectionCount
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return ""
	}
}

// rayStep parameterizes one scan direction: the square index delta per step
// and the file that terminates the scan. Directions with no east/west
// component terminate on the index range alone and carry stopFile -1.
type rayStep struct {
	delta    square.Square
	stopFile square.Square
}

var raySteps = [DirectionCount]rayStep{
	North:     {delta: 8, stopFile: -1},
	NorthEast: {delta: 9, stopFile: square.FileH},
	East:      {delta: 1, stopFile: square.FileH},
	SouthEast: {delta: -7, stopFile: square.FileH},
	South:     {delta: -8, stopFile: -1},
	SouthWest: {delta: -9, stopFile: square.FileA},
	West:      {delta: -1, stopFile: square.FileA},
	NorthWest: {delta: 7, stopFile: square.FileA},
}

// Ray returns the squares reachable from s by repeated steps in direction d
// across an otherwise empty board. The scan stops at board edges and never
// wraps between files a and h: the step after placing a bit on the
// direction's stop file would cross the board edge, so the scan ends there,
// and an origin already sitting on the stop file casts nothing. The origin
// square is never a member of the result. s must be a valid square.
func Ray(s square.Square, d Direction) Bitboard {
	step := raySteps[d]
	var bb Bitboard
	if step.stopFile >= 0 && s.File() == step.stopFile {
		return bb
	}
	for cur := s + step.delta; cur.Valid(); cur += step.delta {
		bb = bb.Set(cur)
		if step.stopFile >= 0 && cur.File() == step.stopFile {
			break
		}
	}
	return bb
}

package main

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/square"
)

// verify re-derives every table entry from plain file/rank coordinate math,
// which cannot wrap by construction, and compares it against the bitboard
// implementation square by square.
func verify(workers int) error {
	log.Println("============ verify")
	tables := attack.NewTables()

	var checked uint64
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	start := time.Now()
	for i := square.Square(0); i < square.Count; i++ {
		s := i
		g.Go(func() error {
			n, err := verifySquare(tables, s)
			atomic.AddUint64(&checked, n)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	_, _ = message.NewPrinter(language.English).
		Printf("verified %d properties across %d squares (%.3fs elapsed)\n",
			atomic.LoadUint64(&checked), square.Count, elapsed.Seconds())
	return nil
}

var rayDeltas = map[attack.Direction][2]square.Square{
	attack.North:     {0, 1},
	attack.NorthEast: {1, 1},
	attack.East:      {1, 0},
	attack.SouthEast: {1, -1},
	attack.South:     {0, -1},
	attack.SouthWest: {-1, -1},
	attack.West:      {-1, 0},
	attack.NorthWest: {-1, 1},
}

var (
	knightLeaps = [8][2]square.Square{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]square.Square{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

func verifySquare(tables *attack.Tables, s square.Square) (uint64, error) {
	var checked uint64

	walk := func(dx, dy square.Square) attack.Bitboard {
		var bb attack.Bitboard
		for x, y := s.File()+dx, s.Rank()+dy; 0 <= x && x < square.Width && 0 <= y && y < square.Width; x, y = x+dx, y+dy {
			bb = bb.Set(y*square.Width + x)
		}
		return bb
	}
	jump := func(steps [8][2]square.Square) attack.Bitboard {
		var bb attack.Bitboard
		for _, st := range steps {
			x, y := s.File()+st[0], s.Rank()+st[1]
			if 0 <= x && x < square.Width && 0 <= y && y < square.Width {
				bb = bb.Set(y*square.Width + x)
			}
		}
		return bb
	}

	for d, delta := range rayDeltas {
		if got, want := attack.Ray(s, d), walk(delta[0], delta[1]); got != want {
			return checked, fmt.Errorf("ray mismatch: square=%s direction=%s got=%#x want=%#x", s, d, got, want)
		}
		checked++
	}

	var bishop, rook attack.Bitboard
	for _, d := range [][2]square.Square{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}} {
		bishop |= walk(d[0], d[1])
	}
	for _, d := range [][2]square.Square{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		rook |= walk(d[0], d[1])
	}

	checks := []struct {
		name string
		got  attack.Bitboard
		want attack.Bitboard
	}{
		{name: "knight", got: tables.Knight(s), want: jump(knightLeaps)},
		{name: "king", got: tables.King(s), want: jump(kingSteps)},
		{name: "bishop", got: tables.Bishop(s), want: bishop},
		{name: "rook", got: tables.Rook(s), want: rook},
		{name: "queen", got: tables.Queen(s), want: bishop | rook},
	}
	for _, c := range checks {
		if c.got != c.want {
			return checked, fmt.Errorf("%s mismatch: square=%s got=%#x want=%#x", c.name, s, c.got, c.want)
		}
		checked++
	}

	if overlap := tables.Bishop(s) & tables.Rook(s); overlap != 0 {
		return checked, fmt.Errorf("bishop and rook overlap: square=%s overlap=%#x", s, overlap)
	}
	checked++

	return checked, nil
}

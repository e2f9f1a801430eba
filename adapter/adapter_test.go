package adapter

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/square"
)

type fakeSource struct {
	occ Occupancy
	err error
}

func (f *fakeSource) Occupancy() (Occupancy, error) {
	return f.occ, f.err
}

func validOccupancy() Occupancy {
	var occ Occupancy
	occ[attack.SideWhite][attack.PieceKnight] = attack.Bitboard(0).Set(0).Set(63) // a1, h8
	occ[attack.SideWhite][attack.PieceKing] = attack.Bitboard(0).Set(4)           // e1
	occ[attack.SideBlack][attack.PiecePawn] = attack.RankMask(square.Rank7)
	occ[attack.SideBlack][attack.PieceKing] = attack.Bitboard(0).Set(60) // e8
	return occ
}

func TestSync(t *testing.T) {
	t.Parallel()
	src := &fakeSource{occ: validOccupancy()}
	a := New(src)
	if err := a.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables := attack.NewTables()
	if got, want := a.Attacks(attack.SideWhite, attack.PieceKnight), tables.Knight(0)|tables.Knight(63); got != want {
		t.Errorf("unexpected knight attacks: got=%#x want=%#x", got, want)
	}
	if got, want := a.Attacks(attack.SideBlack, attack.PiecePawn), attack.RankMask(square.Rank6); got != want {
		t.Errorf("unexpected pawn attacks: got=%#x want=%#x", got, want)
	}
	if got, want := a.SideOccupied(attack.SideWhite), attack.Bitboard(0).Set(0).Set(63).Set(4); got != want {
		t.Errorf("unexpected white occupancy: got=%#x want=%#x", got, want)
	}
	wantOccupied := a.SideOccupied(attack.SideWhite) | a.SideOccupied(attack.SideBlack)
	if got := a.Occupied(); got != wantOccupied {
		t.Errorf("unexpected combined occupancy: got=%#x want=%#x", got, wantOccupied)
	}
	if got, want := a.Empty(), ^wantOccupied; got != want {
		t.Errorf("unexpected empty mask: got=%#x want=%#x", got, want)
	}
	if got, want := a.Occupancy(attack.SideBlack, attack.PiecePawn), attack.RankMask(square.Rank7); got != want {
		t.Errorf("unexpected occupancy query: got=%#x want=%#x", got, want)
	}
}

func TestSyncOverlapping(t *testing.T) {
	t.Parallel()
	src := &fakeSource{occ: validOccupancy()}
	a := New(src)
	if err := a.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKnights := a.Occupancy(attack.SideWhite, attack.PieceKnight)

	overlapping := validOccupancy()
	overlapping[attack.SideWhite][attack.PieceQueen] = attack.Bitboard(0).Set(0) // knight square
	src.occ = overlapping

	err := a.Sync()
	if !errors.Is(err, ErrOverlapping) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrOverlapping)
	}

	// the previous snapshot must survive a failed sync
	if got := a.Occupancy(attack.SideWhite, attack.PieceQueen); got != 0 {
		t.Errorf("failed sync leaked into snapshot: got=%#x", got)
	}
	if got := a.Occupancy(attack.SideWhite, attack.PieceKnight); got != wantKnights {
		t.Errorf("previous snapshot lost: got=%#x want=%#x", got, wantKnights)
	}
}

func TestSyncOppositeSidesMayShare(t *testing.T) {
	t.Parallel()
	// disjointness is per side; a cross-side overlap is the engine's bug to
	// find, not ours
	occ := validOccupancy()
	occ[attack.SideBlack][attack.PieceQueen] = attack.Bitboard(0).Set(0)
	a := New(&fakeSource{occ: occ})
	if err := a.Sync(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSyncSourceError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("engine unavailable")
	a := New(&fakeSource{err: wantErr})
	if err := a.Sync(); !errors.Is(err, wantErr) {
		t.Errorf("unexpected error: got=%v want=%v", err, wantErr)
	}
}

func TestSideAttacks(t *testing.T) {
	t.Parallel()
	src := &fakeSource{occ: validOccupancy()}
	a := New(src)
	if err := a.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var want attack.Bitboard
	for _, p := range attack.Kinds {
		want |= a.Attacks(attack.SideWhite, p)
	}
	if got := a.SideAttacks(attack.SideWhite); got != want {
		t.Errorf("unexpected side attacks: got=%#x want=%#x", got, want)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	src := &fakeSource{occ: validOccupancy()}
	a := New(src)
	if err := a.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dump := a.Dump()
	if got, want := strings.Count(dump, "N"), 2; got != want {
		t.Errorf("unexpected knight glyph count: got=%d want=%d", got, want)
	}
	if got, want := strings.Count(dump, "p"), 8; got != want {
		t.Errorf("unexpected pawn glyph count: got=%d want=%d", got, want)
	}
	if !strings.Contains(dump, "K") || !strings.Contains(dump, "k") {
		t.Error("expected both king glyphs in dump")
	}
}

func TestConcurrentQueries(t *testing.T) {
	t.Parallel()
	src := &fakeSource{occ: validOccupancy()}
	a := New(src)
	if err := a.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = a.SideAttacks(attack.SideWhite)
				_ = a.Empty()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		if err := a.Sync(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	wg.Wait()
}

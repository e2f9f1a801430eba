// Package adapter is the boundary to the external chess-rules engine. It
// pulls the 12 per-kind occupancy bitboards on each Sync, validates them,
// and serves derived occupancy and attack masks from a cached snapshot.
package adapter

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/square"
)

var (
	// ErrOverlapping represents an occupancy snapshot in which two piece
	// kinds of the same side claim the same square.
	ErrOverlapping = errors.New("overlapping occupancy")
)

// Occupancy holds the per piece kind bitboards of both sides, indexed by
// attack.Side and attack.Piece. Index 0 of either dimension is unused.
type Occupancy [2 + 1][6 + 1]attack.Bitboard

// PieceAt returns the side and kind occupying s, or zero values when s is
// empty. s must be a valid square.
func (o Occupancy) PieceAt(s square.Square) (attack.Side, attack.Piece) {
	for _, sd := range attack.Sides {
		for _, p := range attack.Kinds {
			if o[sd][p].Get(s) {
				return sd, p
			}
		}
	}
	return attack.SideUnknown, attack.PieceUnknown
}

// Source supplies the current occupancy of an external rules engine.
//
// The engine must use the same LERF square convention as this module
// (a1 = 0, rank-major). A convention mismatch is not detectable at runtime;
// sources wrapping engines with a different convention must translate.
type Source interface {
	Occupancy() (Occupancy, error)
}

// Adapter caches the last valid occupancy snapshot of a Source together
// with the attack masks derived from it. Queries may run concurrently;
// Sync excludes them for its duration.
type Adapter struct {
	tables *attack.Tables
	source Source

	mu       sync.RWMutex
	occ      Occupancy
	attacks  [2 + 1][6 + 1]attack.Bitboard
	sides    [2 + 1]attack.Bitboard
	occupied attack.Bitboard
}

type adapterConfig struct {
	tables *attack.Tables
}

type Option func(*adapterConfig)

// WithTables makes the adapter share an existing set of attack tables
// instead of computing its own.
func WithTables(t *attack.Tables) Option {
	return func(cfg *adapterConfig) {
		cfg.tables = t
	}
}

func New(source Source, opts ...Option) *Adapter {
	cfg := &adapterConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.tables == nil {
		cfg.tables = attack.NewTables()
	}
	return &Adapter{
		tables: cfg.tables,
		source: source,
	}
}

// Sync pulls a fresh occupancy snapshot from the source and recomputes the
// derived masks. It fails without touching the previous snapshot when the
// source reports occupancy that is not pairwise disjoint per side.
func (a *Adapter) Sync() error {
	occ, err := a.source.Occupancy()
	if err != nil {
		return err
	}

	var sides [2 + 1]attack.Bitboard
	for _, s := range attack.Sides {
		var count int
		for _, p := range attack.Kinds {
			sides[s] |= occ[s][p]
			count += occ[s][p].BitCount()
		}
		if count != sides[s].BitCount() {
			return fmt.Errorf("%w: %s piece kinds share squares", ErrOverlapping, s)
		}
	}

	var attacks [2 + 1][6 + 1]attack.Bitboard
	for _, s := range attack.Sides {
		for _, p := range attack.Kinds {
			if p == attack.PiecePawn {
				attacks[s][p] = attack.PawnAttacks(s, occ[s][p])
				continue
			}
			attacks[s][p] = a.tables.Attacks(p, occ[s][p])
		}
	}

	a.mu.Lock()
	a.occ = occ
	a.attacks = attacks
	a.sides = sides
	a.occupied = sides[attack.SideWhite] | sides[attack.SideBlack]
	a.mu.Unlock()
	return nil
}

// Snapshot returns the last valid occupancy snapshot.
func (a *Adapter) Snapshot() Occupancy {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.occ
}

// Occupancy returns the occupancy bitboard of one (side, kind) pair.
func (a *Adapter) Occupancy(s attack.Side, p attack.Piece) attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.occ[s][p]
}

// Attacks returns the aggregated attack mask of every piece of kind p and
// side s in the snapshot.
func (a *Adapter) Attacks(s attack.Side, p attack.Piece) attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.attacks[s][p]
}

// SideAttacks returns the union of the attack masks of every piece kind of
// side s.
func (a *Adapter) SideAttacks(s attack.Side) attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var atk attack.Bitboard
	for _, p := range attack.Kinds {
		atk |= a.attacks[s][p]
	}
	return atk
}

// SideOccupied returns the union of the occupancy of every piece kind of
// side s.
func (a *Adapter) SideOccupied(s attack.Side) attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sides[s]
}

// Occupied returns the combined occupancy of both sides.
func (a *Adapter) Occupied() attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.occupied
}

// Empty returns the complement of the combined occupancy.
func (a *Adapter) Empty() attack.Bitboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ^a.occupied
}

// Dump renders the snapshot as an 8x8 grid with one FEN glyph per piece.
func (a *Adapter) Dump() string {
	occ := a.Snapshot()
	builder := strings.Builder{}
	for y := square.Width - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := square.Square(0); x < square.Width; x++ {
			s, p := occ.PieceAt(y*square.Width + x)
			sym := p.SymbolFEN(s)
			if s == attack.SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := square.Square(0); x < square.Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+x))
	}
	return builder.String()
}

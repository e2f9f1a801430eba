package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lichfield/attackgen/adapter"
	"github.com/lichfield/attackgen/attack"
	"github.com/lichfield/attackgen/render"
)

func dump(fen string) error {
	log.Println("============ dump")
	b := dragontoothmg.ParseFen(fen)
	a := adapter.New(adapter.NewEngineSource(&b))
	if err := a.Sync(); err != nil {
		return err
	}

	fmt.Println(render.Board(a.Snapshot()))
	fmt.Println()
	fmt.Println(a.Dump())
	fmt.Println()
	for _, s := range attack.Sides {
		for _, p := range attack.Kinds {
			atk := a.Attacks(s, p)
			fmt.Printf("%-5s %-6s attacks %2d squares: %s\n", s, p, atk.BitCount(), notations(atk))
		}
		fmt.Printf("%-5s combined attacks:\n%s\n", s, a.SideAttacks(s).Dump())
	}
	fmt.Printf("occupied: %d squares, empty: %d squares\n", a.Occupied().BitCount(), a.Empty().BitCount())
	return nil
}

func notations(bm attack.Bitboard) string {
	ns := make([]string, 0, bm.BitCount())
	for bb := bm; bb != 0; bb &= bb - 1 {
		ns = append(ns, bb.LS1B().Notation())
	}
	slices.Sort(ns)
	return strings.Join(ns, " ")
}

func writeSVG(fen, path, mark string) error {
	log.Println("============ svg")
	b := dragontoothmg.ParseFen(fen)
	a := adapter.New(adapter.NewEngineSource(&b))
	if err := a.Sync(); err != nil {
		return err
	}

	var markBM attack.Bitboard
	switch mark {
	case "white":
		markBM = a.SideAttacks(attack.SideWhite)
	case "black":
		markBM = a.SideAttacks(attack.SideBlack)
	case "":
	default:
		return fmt.Errorf("unknown mark side %q", mark)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	render.BoardSVG(f, a.Snapshot(), markBM)
	log.Println("written:", path)
	return nil
}

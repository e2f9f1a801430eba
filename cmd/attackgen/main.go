package main

import (
	"flag"
	"log"
	"os"

	"github.com/dylhunn/dragontoothmg"
)

const (
	exitOK = iota
	exitErr
)

var (
	fen = flag.String("fen", dragontoothmg.Startpos, "position to inspect, in FEN")

	svgPath = flag.String("svg", "", "write the position to an SVG file")
	svgMark = flag.String("svg.mark", "", "side whose attack squares to highlight (white|black)")

	verifyRun     = flag.Bool("verify", false, "run verify mode")
	verifyWorkers = flag.Int("verify.workers", 8, "parallel workers in verify mode")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	if *verifyRun {
		return verify(*verifyWorkers)
	}
	if *svgPath != "" {
		return writeSVG(*fen, *svgPath, *svgMark)
	}
	return dump(*fen)
}

// Command rivalgo-perft walks the legal move tree to a fixed depth and
// counts leaf nodes, for move-generator validation against known perft
// results (https://www.chessprogramming.org/Perft_Results).
//
// Grounded on _examples/treepeck-chego/internal/perft/perft.go: the same
// recursive node-count shape and flag set (-depth, -cpuprofile,
// -memprofile). Where chego's version saves/restores the whole Position
// by value around each recursive call, this one follows spec.md §3.6's
// mandated in-place make/unmake token instead, since that is this
// module's one make/unmake convention throughout.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/corvidchess/rivalgo/boardfmt"
	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/makemove"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/zobrist"
)

func perft(p *position.Position, depth int) uint64 {
	var list movegen.List
	movegen.Generate(p, &list)

	var nodes uint64
	for i := 0; i < list.N; i++ {
		undo := makemove.Make(p, list.Moves[i])
		if !movegen.IsCheck(p, p.Mover.Opponent()) {
			if depth == 1 {
				nodes++
			} else {
				nodes += perft(p, depth-1)
			}
		}
		makemove.Unmake(p, list.Moves[i], undo)
	}
	return nodes
}

func main() {
	depth := flag.Int("depth", 1, "perft search depth")
	fenStr := flag.String("fen", fen.Startpos, "FEN of the root position")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")
	printBoard := flag.Bool("print", false, "print the root position before running perft")
	flag.Parse()

	zobrist.Init()

	p, err := fen.Parse(*fenStr)
	if err != nil {
		log.Fatalf("rivalgo-perft: %v", err)
	}

	if *printBoard {
		log.Print("\n" + boardfmt.Format(p))
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	nodes := perft(p, *depth)
	elapsed := time.Since(start)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}

	nps := float64(nodes) / elapsed.Seconds()
	log.Printf("depth %d: %d nodes in %s (%.0f nps)", *depth, nodes, elapsed, nps)
}

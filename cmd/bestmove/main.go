package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/notnil/chess"

	"example/chess-engine/app"
	"example/chess-engine/app/config"
	"example/chess-engine/app/logx"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		fen      = flag.String("fen", startingFEN, "position to search, in FEN")
		depth    = flag.Int("depth", 0, "fixed search depth; 0 means iterative deepening")
		maxDepth = flag.Int("max-depth", cfg.Search.MaxDepth, "iterative deepening ceiling")
		budgetMS = flag.Int("budget-ms", cfg.Search.TimeBudgetMS, "time budget in milliseconds, 0 = none")
	)
	flag.Parse()

	logger := logx.NewLogger(cfg.Logs.Style, cfg.Logs.Level)

	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(*fen)); err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	start := time.Now()
	searcher := app.NewSearcher(logger)

	if *depth > 0 {
		move, score := searcher.FindBestMove(pos, *depth)
		if move == nil {
			fmt.Println("no legal moves: terminal position")
			return
		}
		fmt.Printf("bestmove %s score cp %d depth %d time %s\n", move, score, *depth, time.Since(start).Round(time.Millisecond))
		return
	}

	res := searcher.IterativeDeepening(context.Background(), pos, *maxDepth, time.Duration(*budgetMS)*time.Millisecond)
	if res.Move == nil {
		fmt.Println("no legal moves: terminal position")
		return
	}
	fmt.Printf("bestmove %s score cp %d depth %d complete %t nodes %d time %s\n",
		res.Move, res.Score, res.Depth, res.Complete, res.Nodes, time.Since(start).Round(time.Millisecond))
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/notnil/chess"

	"example/chess-engine/app"
	"example/chess-engine/app/config"
	"example/chess-engine/app/logx"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logx.NewLogger(cfg.Logs.Style, cfg.Logs.Level)

	fmt.Println("You are playing as White, the engine is playing as Black.")
	fmt.Println("Enter moves in UCI format (e.g. 'e2e4'), or 'help' / 'quit'.")

	game := chess.NewGame()
	searcher := app.NewSearcher(logger)
	reader := bufio.NewReader(os.Stdin)
	budget := time.Duration(cfg.Search.TimeBudgetMS) * time.Millisecond
	moveCount := 0

	for game.Outcome() == chess.NoOutcome {
		fmt.Println(game.Position().Board().Draw())

		if game.Position().Turn() == chess.White {
			move := readUserMove(reader, game)
			if move == nil {
				fmt.Println("Thanks for playing!")
				return
			}
			if err := game.Move(move); err != nil {
				fmt.Printf("Error applying move %s: %v\n", move, err)
				continue
			}
			fmt.Printf("You played: %s\n", move)
		} else {
			fmt.Println("Engine is thinking...")
			start := time.Now()

			var move *chess.Move
			searcher.SeedHistory(game.Positions())
			// Iterative deepening with a budget in the opening and endgame,
			// plain fixed depth in the middlegame.
			if moveCount < 10 || pieceCount(game.Position().Board()) < 10 {
				res := searcher.IterativeDeepening(context.Background(), game.Position(), cfg.Search.MaxDepth, budget)
				move = res.Move
			} else {
				move, _ = searcher.FindBestMove(game.Position(), cfg.Search.Depth)
			}

			if move == nil {
				fmt.Println("Engine has no moves available.")
				break
			}
			if err := game.Move(move); err != nil {
				log.Fatalf("engine produced an illegal move %s: %v", move, err)
			}
			fmt.Printf("Engine plays: %s (thought for %.1fs)\n", move, time.Since(start).Seconds())
		}
		moveCount++
	}

	fmt.Println(game.Position().Board().Draw())
	printResult(game)
}

// readUserMove keeps prompting until it gets a legal move; nil means quit.
func readUserMove(reader *bufio.Reader, game *chess.Game) *chess.Move {
	for {
		legal := game.ValidMoves()
		fmt.Printf("You have %d legal moves.\n", len(legal))
		fmt.Print("Enter your move: ")

		input, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		input = strings.TrimSpace(strings.ToLower(input))

		switch input {
		case "quit":
			return nil
		case "help":
			fmt.Println("Moves are from-square plus to-square, e.g. 'e2e4'.")
			fmt.Println("Castle by moving the king: 'e1g1' or 'e1c1'.")
			fmt.Println("Promote by appending the piece letter: 'e7e8q'.")
			continue
		}

		for _, m := range legal {
			if m.String() == input {
				return m
			}
		}

		// Fall back to algebraic notation ("Nf3", "exd5", ...)
		if move, err := (chess.AlgebraicNotation{}).Decode(game.Position(), input); err == nil {
			for _, m := range legal {
				if m.String() == move.String() {
					return m
				}
			}
		}
		fmt.Println("Illegal move! Please try again.")
	}
}

func pieceCount(board *chess.Board) int {
	n := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if board.Piece(sq) != chess.NoPiece {
			n++
		}
	}
	return n
}

func printResult(game *chess.Game) {
	fmt.Println("\nGame over!")
	switch game.Outcome() {
	case chess.WhiteWon:
		fmt.Println("White (you) wins by checkmate! Well played.")
	case chess.BlackWon:
		fmt.Println("Black (engine) wins by checkmate. Try again!")
	default:
		switch game.Method() {
		case chess.Stalemate:
			fmt.Println("Stalemate! The game is a draw.")
		case chess.InsufficientMaterial:
			fmt.Println("Draw by insufficient material.")
		case chess.ThreefoldRepetition:
			fmt.Println("Draw by threefold repetition.")
		default:
			fmt.Println("The game is a draw.")
		}
	}
	fmt.Printf("Final result: %s\n", game.Outcome())
}

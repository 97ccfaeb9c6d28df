// --- sparring.go ---
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"example/chess-engine/app/config"
	"example/chess-engine/app/models"
)

// safety net so a sparring game cannot run forever
const maxSparringPlies = 400

// PlaySparringGame plays a single game between our search and an external UCI
// engine, our side alternating with the game index.
func PlaySparringGame(ctx context.Context, cfg *config.Config, eng *UCIEngine, gameIndex int, logger zerolog.Logger) (models.GameRecord, error) {
	start := time.Now()

	ourColor := chess.White
	if gameIndex%2 == 1 {
		ourColor = chess.Black
	}

	game := chess.NewGame()
	if err := eng.NewGame(); err != nil {
		return models.GameRecord{}, err
	}

	searcher := NewSearcher(logger)
	settings := models.EngineSettings{
		Depth:      cfg.Sparring.Depth,
		MoveTimeMS: cfg.Sparring.MoveTime,
		UseDepth:   cfg.Sparring.DepthOrTime,
	}
	budget := time.Duration(cfg.Search.TimeBudgetMS) * time.Millisecond

	plies := 0
	for game.Outcome() == chess.NoOutcome && plies < maxSparringPlies {
		if ctx.Err() != nil {
			return models.GameRecord{}, ctx.Err()
		}

		var move *chess.Move
		if game.Position().Turn() == ourColor {
			searcher.SeedHistory(game.Positions())
			res := searcher.IterativeDeepening(ctx, game.Position(), cfg.Search.MaxDepth, budget)
			move = res.Move
		} else {
			score, err := eng.BestMoveFEN(ctx, game.Position().String(), settings)
			if err != nil {
				return models.GameRecord{}, err
			}
			move = matchUCIMove(game.Position(), score.Best)
			if move == nil {
				return models.GameRecord{}, fmt.Errorf("engine suggested illegal move %q", score.Best)
			}
		}

		if move == nil {
			break
		}
		if err := game.Move(move); err != nil {
			return models.GameRecord{}, err
		}
		plies++
	}

	record := models.GameRecord{
		GameIndex: gameIndex,
		OurColor:  colorName(ourColor),
		Result:    resultFor(game, ourColor),
		Method:    fmt.Sprint(game.Method()),
		Plies:     plies,
		FinalFEN:  game.Position().String(),
		ElapsedMS: time.Since(start).Milliseconds(),
		PGNMoves:  strings.TrimSpace(game.String()),
	}
	return record, nil
}

// PlaySparringMatch runs the configured number of games across a worker pool,
// one external engine process per worker.
func PlaySparringMatch(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (models.MatchSummary, []models.GameRecord) {
	numGames := cfg.Sparring.NumGames
	numWorkers := config.WorkerCount()
	if numWorkers > numGames {
		numWorkers = numGames
	}
	logger.Info().Int("games", numGames).Int("workers", numWorkers).Msg("starting sparring match")

	jobs := make(chan int, numGames)
	results := make(chan models.GameRecord, numGames)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			eng, err := NewUCIEngine(cfg.Sparring.EnginePath)
			if err != nil {
				logger.Error().Err(err).Int("worker", id).Msg("failed to start sparring engine")
				return
			}
			defer eng.Close()

			for gameIndex := range jobs {
				record, err := PlaySparringGame(ctx, cfg, eng, gameIndex, logger)
				if err != nil {
					logger.Error().Err(err).Int("worker", id).Int("game", gameIndex).Msg("sparring game failed")
					record = models.GameRecord{GameIndex: gameIndex, FailureMsg: err.Error()}
				}
				results <- record
			}
		}(i)
	}

	// Feed jobs
	go func() {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			jobs <- i
		}
	}()

	// Close results once ALL workers are done
	go func() {
		wg.Wait()
		close(results)
	}()

	var records []models.GameRecord
	summary := models.MatchSummary{}
	for record := range results {
		records = append(records, record)
		if record.FailureMsg != "" {
			continue
		}
		summary.Games++
		switch record.Result {
		case "win":
			summary.Wins++
		case "loss":
			summary.Losses++
		case "draw":
			summary.Draws++
		}
	}
	return summary, records
}

// matchUCIMove resolves a UCI move string against the position's legal moves.
func matchUCIMove(pos *chess.Position, uci string) *chess.Move {
	for _, m := range pos.ValidMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func resultFor(game *chess.Game, ourColor chess.Color) string {
	outcome := game.Outcome()
	switch {
	case outcome == chess.WhiteWon && ourColor == chess.White,
		outcome == chess.BlackWon && ourColor == chess.Black:
		return "win"
	case outcome == chess.WhiteWon || outcome == chess.BlackWon:
		return "loss"
	default:
		return "draw"
	}
}

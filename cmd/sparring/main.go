package main

import (
	"context"
	"log"
	"time"

	"example/chess-engine/app"
	"example/chess-engine/app/config"
	"example/chess-engine/app/logx"
)

func main() {
	start := time.Now()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Sparring.EnginePath == "" {
		log.Fatalf("ENGINE_PATH is not set; point it at a UCI engine binary")
	}
	logger := logx.NewLogger(cfg.Logs.Style, cfg.Logs.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	summary, records := app.PlaySparringMatch(ctx, cfg, logger)

	for _, r := range records {
		if r.FailureMsg != "" {
			logger.Warn().Int("game", r.GameIndex).Str("failure", r.FailureMsg).Msg("game not counted")
			continue
		}
		logger.Info().
			Int("game", r.GameIndex).
			Str("our_color", r.OurColor).
			Str("result", r.Result).
			Str("method", r.Method).
			Int("plies", r.Plies).
			Int64("elapsed_ms", r.ElapsedMS).
			Msg("game finished")
	}

	logger.Info().
		Int("games", summary.Games).
		Int("wins", summary.Wins).
		Int("losses", summary.Losses).
		Int("draws", summary.Draws).
		Dur("took", time.Since(start)).
		Msg("match complete")
}

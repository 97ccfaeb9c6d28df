package config

import (
	"log"
	"os"
	"runtime"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs     LogConfig
	Search   SearchConfig
	Sparring SparringConfig
}

type LogConfig struct {
	Style string
	Level string
}

type SearchConfig struct {
	Depth        int // fixed-depth searches
	MaxDepth     int // iterative deepening ceiling
	TimeBudgetMS int // wall-clock budget for iterative deepening, 0 = none
}

type SparringConfig struct {
	EnginePath  string
	MoveTime    int
	DepthOrTime bool //true for depth, false for time
	Depth       int
	NumGames    int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Logs: LogConfig{
			Style: envString("LOG_STYLE", "console"),
			Level: envString("LOG_LEVEL", "info"),
		},
		Search: SearchConfig{
			Depth:        envInt("SEARCH_DEPTH", 4),
			MaxDepth:     envInt("SEARCH_MAX_DEPTH", 5),
			TimeBudgetMS: envInt("SEARCH_TIME_BUDGET_MS", 5000),
		},
		Sparring: SparringConfig{
			EnginePath:  os.Getenv("ENGINE_PATH"),
			MoveTime:    envInt("ENGINE_MOVE_TIME", 100),
			Depth:       envInt("ENGINE_DEPTH", 6),
			DepthOrTime: envBool("ENGINE_DEPTH_OR_TIME", false),
			NumGames:    envInt("SPARRING_NUM_GAMES", 4),
		},
	}

	return cfg, nil
}

// WorkerCount defaults to the number of CPUs; override with the WORKERS env var.
func WorkerCount() int {
	n := runtime.NumCPU()
	if v := os.Getenv("WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	return n
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Error converting %s to int: %v", key, err)
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return b
}

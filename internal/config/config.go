// apps/go-solver/internal/config/config.go
//
// Environment configuration shared by the server and the CLI.
// A .env file in the working directory is loaded first when present;
// real environment variables win over it.
//
// Variables:
//   PORT              HTTP port (default 5175)
//   LOG_LEVEL         zerolog level (default info)
//   WORDS_FILE        word list path; empty uses the embedded list
//   MAX_ATTEMPTS      attempt budget per game (default 6)
//   DB_PATH           SQLite file for the history ledger (default ./data/solver.db)
//   JWT_SECRET        HS256 signing secret
//   JWT_EXPIRES_DAYS  token lifetime in days (default 14)
//   COOKIE_NAME       auth cookie name (default katla_token)
//   CLIENT_ORIGIN     allowed CORS origin (default http://localhost:5173)
//   NODE_ENV          "production" enables secure cookies
//   PUZZLE_BASE_URL   archive base URL
//   PUZZLE_COUNT      number of archive puzzles
//   PUZZLE_SALT       salt for the per-day puzzle pick

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/puzzle"
)

// Config is the resolved process configuration.
type Config struct {
	Port           string
	LogLevel       string
	WordsFile      string
	MaxAttempts    int
	DBPath         string
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
	PuzzleBaseURL  string
	PuzzleCount    int
	PuzzleSalt     string
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env files.
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		MaxAttempts:    envInt("MAX_ATTEMPTS", game.DefaultMaxAttempts),
		DBPath:         getEnv("DB_PATH", "./data/solver.db"),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiresDays: envInt("JWT_EXPIRES_DAYS", 14),
		CookieName:     getEnv("COOKIE_NAME", "katla_token"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:     os.Getenv("NODE_ENV") == "production",
		PuzzleBaseURL:  getEnv("PUZZLE_BASE_URL", puzzle.DefaultBaseURL),
		PuzzleCount:    envInt("PUZZLE_COUNT", puzzle.DefaultCount),
		PuzzleSalt:     getEnv("PUZZLE_SALT", "local_dev_salt"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt returns k parsed as an int, or def if unset or invalid.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

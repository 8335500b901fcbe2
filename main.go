// apps/go-solver/main.go
//
// HTTP entry point for the Katla solver.
// Loads configuration, the word list and the history ledger, then serves
// the solver API. The same server can also be started with `katla serve`.

package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.LogLevel, false)

	srv, closeFn, err := httpserver.Bootstrap(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer closeFn()

	log.Info().Str("port", cfg.Port).Msg("starting go-solver")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

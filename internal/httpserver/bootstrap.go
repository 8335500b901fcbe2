package httpserver

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Bootstrap loads the word list, opens and migrates the history ledger and
// builds a Server. The returned func closes the database.
func Bootstrap(cfg config.Config) (*Server, func(), error) {
	list, err := words.Resolve(cfg.WordsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load word list: %w", err)
	}
	log.Info().Int("words", list.Cardinality()).Str("file", cfg.WordsFile).Msg("word list loaded")

	db, err := history.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open history db: %w", err)
	}
	if err := history.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate history db: %w", err)
	}

	srv := New(cfg, list, store.NewMemoryStore(), history.NewStore(db))
	return srv, func() { _ = db.Close() }, nil
}

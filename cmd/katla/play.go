package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var errInputClosed = errors.New("input closed before the game finished")

var (
	maxAttempts int
	record      bool

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Solve interactively: enter each guess and the colors you got back",
		Long: `Before every attempt the current constraints and the number of
remaining candidates are shown. Enter the guessed word, then its feedback
as five digits: 0 = gray, 1 = yellow, 2 = green.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Resolve(cfg.WordsFile)
			if err != nil {
				return err
			}
			budget := maxAttempts
			if budget <= 0 {
				budget = cfg.MaxAttempts
			}
			g, err := runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), list, budget)
			if err != nil {
				return err
			}
			if record {
				return recordRun(cmd, g)
			}
			return nil
		},
	}
)

func init() {
	playCmd.Flags().IntVarP(&maxAttempts, "attempts", "n", 0, "attempt budget (default MAX_ATTEMPTS or 6)")
	playCmd.Flags().BoolVar(&record, "record", false, "write the finished game to the history ledger (DB_PATH)")
}

// runPlay drives one interactive session until it is solved or exhausted.
// Malformed input and unknown all-correct words are reported and re-prompted
// without using an attempt.
func runPlay(in io.Reader, out io.Writer, list mapset.Set[string], budget int) (*game.Game, error) {
	sc := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	g := game.New(list, budget)
	fmt.Fprintln(out, titleStyle.Render("Katla solver"))
	fmt.Fprintf(out, "Word list loaded with %d words.\n", list.Cardinality())

	for !g.State.Finished() {
		fmt.Fprintf(out, "\n=== Attempt %d/%d ===\n", g.Attempts+1, g.MaxAttempts)
		printState(out, g.Snapshot())

		word, ok := prompt("Guess (5 letters): ")
		if !ok {
			return g, errInputClosed
		}
		if _, err := solver.NormalizeWord(word); err != nil {
			fmt.Fprintln(out, warnStyle.Render(err.Error()))
			continue
		}
		digits, ok := prompt("Feedback (0=gray 1=yellow 2=green, e.g. 01020): ")
		if !ok {
			return g, errInputClosed
		}
		guess, err := solver.ParseGuess(word, digits)
		if err != nil {
			fmt.Fprintln(out, warnStyle.Render(err.Error()))
			continue
		}

		round, err := g.Apply(guess)
		if errors.Is(err, game.ErrUnknownSolution) {
			fmt.Fprintln(out, warnStyle.Render(guess.Word+" is marked all green but is not in the word list; check it and try again."))
			continue
		}
		if err != nil {
			return g, err
		}
		log.Debug().Str("word", round.Word).Int("remaining", round.Remaining).Str("state", string(round.State)).Msg("round applied")

		fmt.Fprintln(out, renderTiles(guess))
		if round.State != game.StateSolved {
			printCandidates(out, g.Candidates())
		}
	}

	switch g.State {
	case game.StateSolved:
		fmt.Fprintf(out, "\n%s %s\n", titleStyle.Render("Solved:"), g.Solution)
	case game.StateExhausted:
		fmt.Fprintf(out, "\nOut of attempts with %d candidates left.\n", g.Remaining())
	}
	return g, nil
}

// recordRun writes a finished game to the history ledger.
func recordRun(cmd *cobra.Command, g *game.Game) error {
	db, err := history.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := history.Migrate(db); err != nil {
		return err
	}
	if err := history.NewStore(db).RecordRun(cmd.Context(), history.RunFromGame(g, "", time.Now())); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	log.Info().Str("gameId", g.ID).Str("db", cfg.DBPath).Msg("run recorded")
	return nil
}

package main

import (
	"fmt"
	"io"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	answer string

	replayCmd = &cobra.Command{
		Use:   "replay --answer WORD GUESS...",
		Short: "Score guesses against a known answer and show how the pool narrows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Resolve(cfg.WordsFile)
			if err != nil {
				return err
			}
			_, err = runReplay(cmd.OutOrStdout(), list, answer, args, cfg.MaxAttempts)
			return err
		},
	}
)

func init() {
	replayCmd.Flags().StringVarP(&answer, "answer", "a", "", "the solution to score guesses against")
	_ = replayCmd.MarkFlagRequired("answer")
}

// runReplay scores each guess against answer and feeds it to a fresh game,
// stopping early once the game finishes.
func runReplay(out io.Writer, list mapset.Set[string], answer string, guesses []string, budget int) (*game.Game, error) {
	ans, err := solver.NormalizeWord(answer)
	if err != nil {
		return nil, err
	}
	if !list.Contains(ans) {
		return nil, fmt.Errorf("answer %s is not in the word list", ans)
	}

	g := game.New(list, budget)
	for _, w := range guesses {
		if g.State.Finished() {
			break
		}
		word, err := solver.NormalizeWord(w)
		if err != nil {
			return g, err
		}
		guess := solver.Guess{Word: word, Feedback: solver.Score(ans, word)}
		round, err := g.Apply(guess)
		if err != nil {
			return g, err
		}
		fmt.Fprintf(out, "%d. %s  %s  %d left\n", round.Number, renderTiles(guess), guess.Feedback, round.Remaining)
	}

	switch g.State {
	case game.StateSolved:
		fmt.Fprintf(out, "%s %s in %d\n", titleStyle.Render("Solved:"), g.Solution, g.Attempts)
	default:
		printCandidates(out, g.Candidates())
	}
	return g, nil
}

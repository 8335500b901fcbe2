package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/puzzle"
)

var (
	random  bool
	dateArg string

	puzzleCmd = &cobra.Command{
		Use:   "puzzle",
		Short: "Print an archive puzzle link to practice on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			switch {
			case random:
				n = puzzle.Random(cfg.PuzzleCount)
			default:
				day := time.Now()
				if dateArg != "" {
					t, err := time.Parse("2006-01-02", dateArg)
					if err != nil {
						return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
					}
					day = t
				}
				n = puzzle.Number(day, cfg.PuzzleSalt, cfg.PuzzleCount)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", n, puzzle.URL(cfg.PuzzleBaseURL, n))
			return nil
		},
	}
)

func init() {
	puzzleCmd.Flags().BoolVarP(&random, "random", "r", false, "pick a random puzzle")
	puzzleCmd.Flags().StringVar(&dateArg, "date", "", "pick the puzzle for this date (YYYY-MM-DD)")
}

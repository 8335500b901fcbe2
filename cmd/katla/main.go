// apps/go-solver/cmd/katla
//
// Terminal front end for the Katla solver.
//
//	katla play              interactive session: type each guess and its 0/1/2 feedback
//	katla replay -a ANSWER  score guesses against a known answer and show the narrowing
//	katla puzzle            print today's (or a random) archive puzzle link
//	katla serve             run the HTTP API
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
)

var (
	cfg       config.Config
	wordsFile string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "katla",
		Short: "Narrow down Katla/Wordle answers from guess feedback",
		Long: `katla keeps track of what each guess's feedback reveals and
filters the word list down to the words that are still possible.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			if wordsFile != "" {
				cfg.WordsFile = wordsFile
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			config.SetupLogging(cfg.LogLevel, true)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&wordsFile, "words", "w", "", "word list file (default: embedded list)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd, replayCmd, puzzleCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

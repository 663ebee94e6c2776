package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "score_predictions"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "score_predictions <dataset.jsonl> <predictions.jsonl>",
		Short:   "Score workout prescription predictions against an expected dataset",
		Version: version,
		Long: `score_predictions joins an expected-prescription dataset against a file of
engine predictions by (user, date, session type) and reports main-lift load
agreement, mean absolute error, and decision accuracy, overall and per user.

Both inputs are line-delimited JSON, one session record per line.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runScore,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().String("config", "", "Path to scorer config YAML")
	rootCmd.Flags().String("out", "", "Directory for JSON run artifacts")
	rootCmd.Flags().Bool("quiet", false, "Suppress structured logs (errors still shown)")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("scoring failed")
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Rahulvijayan123/workout/internal/config"
	"github.com/Rahulvijayan123/workout/internal/scoring"
)

// runScore runs the full load → join → evaluate → report pass.
func runScore(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: score_predictions dataset.jsonl predictions.jsonl")
		os.Exit(2)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	outDir, _ := cmd.Flags().GetString("out")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Artifacts.Dir = outDir
	}

	runID := uuid.New().String()
	log.Info().
		Str("run_id", runID).
		Str("dataset", args[0]).
		Str("predictions", args[1]).
		Msg("Starting prediction scoring")

	dataset, err := scoring.LoadRecords(args[0])
	if err != nil {
		return fmt.Errorf("dataset load failed: %w", err)
	}

	predictions, err := scoring.LoadRecords(args[1])
	if err != nil {
		return fmt.Errorf("predictions load failed: %w", err)
	}

	log.Info().
		Int("dataset_records", len(dataset)).
		Int("prediction_records", len(predictions)).
		Msg("Inputs loaded")

	scorer := scoring.NewScorer(cfg.MainLifts)
	summary := scorer.Score(dataset, predictions)

	scoring.WriteReport(os.Stdout, summary)

	if cfg.Artifacts.Dir != "" {
		artifact := scoring.BuildArtifact(runID, args[0], args[1], len(dataset), len(predictions), summary)
		path, err := scoring.WriteArtifact(cfg.Artifacts.Dir, artifact)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to write run artifact")
		} else {
			log.Info().Str("path", path).Msg("Run artifact written")
		}
	}

	log.Info().
		Int("evaluated", summary.Overall.Total).
		Int("agreements", summary.Overall.Agree).
		Int("decision_comparisons", summary.Overall.DecisionTotal).
		Msg("Scoring completed")

	return nil
}

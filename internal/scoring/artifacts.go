package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Artifact is the JSON record of one scoring run, written next to the
// console report when an artifact directory is configured.
type Artifact struct {
	RunID             string                   `json:"run_id"`
	GeneratedAt       time.Time                `json:"generated_at"`
	DatasetPath       string                   `json:"dataset_path"`
	PredictionsPath   string                   `json:"predictions_path"`
	DatasetRecords    int                      `json:"dataset_records"`
	PredictionRecords int                      `json:"prediction_records"`
	Overall           ArtifactStats            `json:"overall"`
	PerUser           map[string]ArtifactStats `json:"per_user"`
}

// ArtifactStats mirrors Stats with the derived rates precomputed. MAE is 0
// with Samples 0 when no error samples were collected, since NaN has no JSON
// encoding.
type ArtifactStats struct {
	Total            int     `json:"total"`
	Agree            int     `json:"agree"`
	AgreeRate        float64 `json:"agree_rate"`
	MAE              float64 `json:"mae_lb"`
	Samples          int     `json:"samples"`
	DecisionOK       int     `json:"decision_ok"`
	DecisionTotal    int     `json:"decision_total"`
	DecisionAccuracy float64 `json:"decision_accuracy"`
}

func artifactStats(s *Stats) ArtifactStats {
	out := ArtifactStats{
		Total:            s.Total,
		Agree:            s.Agree,
		AgreeRate:        s.AgreeRate(),
		Samples:          len(s.AbsErr),
		DecisionOK:       s.DecisionOK,
		DecisionTotal:    s.DecisionTotal,
		DecisionAccuracy: s.DecisionAccuracy(),
	}
	if out.Samples > 0 {
		out.MAE = s.MAE()
	}
	return out
}

// BuildArtifact assembles the run artifact from the final summary.
func BuildArtifact(runID, datasetPath, predictionsPath string, datasetRecords, predictionRecords int, summary *Summary) *Artifact {
	artifact := &Artifact{
		RunID:             runID,
		GeneratedAt:       time.Now().UTC(),
		DatasetPath:       datasetPath,
		PredictionsPath:   predictionsPath,
		DatasetRecords:    datasetRecords,
		PredictionRecords: predictionRecords,
		Overall:           artifactStats(&summary.Overall),
		PerUser:           make(map[string]ArtifactStats, len(summary.PerUser)),
	}
	for userID, stats := range summary.PerUser {
		artifact.PerUser[userID] = artifactStats(stats)
	}
	return artifact
}

// WriteArtifact writes the artifact as indented JSON under dir with a
// timestamped filename, creating the directory if needed. Returns the
// written path.
func WriteArtifact(dir string, artifact *Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	filename := fmt.Sprintf("score_%s.json", artifact.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	log.Debug().Str("path", path).Str("run_id", artifact.RunID).Msg("Run artifact written")
	return path, nil
}

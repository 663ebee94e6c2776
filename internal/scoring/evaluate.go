package scoring

import "math"

// Scorer evaluates predicted lift prescriptions against expected ones for
// the configured main-lift set.
type Scorer struct {
	mainLifts map[string]bool
}

// NewScorer creates a scorer restricted to the given lifts. An empty list
// falls back to the default main-lift set.
func NewScorer(lifts []string) *Scorer {
	if len(lifts) == 0 {
		lifts = MainLifts
	}
	set := make(map[string]bool, len(lifts))
	for _, lift := range lifts {
		set[lift] = true
	}
	return &Scorer{mainLifts: set}
}

// Score joins the dataset against the predictions by identity key and folds
// every matched main-lift entry into a fresh summary. Dataset records with
// an empty expected list or no matching prediction contribute nothing.
func (s *Scorer) Score(dataset, predictions []Record) *Summary {
	index := indexPredictions(predictions)
	summary := NewSummary()

	for _, record := range dataset {
		expected := record.ExpectedPrescriptions()
		if len(expected) == 0 {
			continue
		}
		match, ok := index[record.Key()]
		if !ok {
			continue
		}
		predicted := match.PredictedPrescriptions()

		for _, exp := range expected {
			if !s.mainLifts[exp.Lift] {
				continue
			}
			pred, ok := findByLift(predicted, exp.Lift)
			if !ok {
				continue
			}
			scoreEntry(summary, record.UserID, exp, pred)
		}
	}

	return summary
}

// indexPredictions maps identity key to prediction record in file order.
// Duplicate keys overwrite: the last prediction in the file wins.
func indexPredictions(predictions []Record) map[Key]Record {
	index := make(map[Key]Record, len(predictions))
	for _, record := range predictions {
		index[record.Key()] = record
	}
	return index
}

// findByLift returns the first entry for the given lift. Duplicate entries
// beyond the first are never consulted.
func findByLift(entries []LiftPrescription, lift string) (LiftPrescription, bool) {
	for _, entry := range entries {
		if entry.Lift == lift {
			return entry, true
		}
	}
	return LiftPrescription{}, false
}

func scoreEntry(summary *Summary, userID string, exp, pred LiftPrescription) {
	user := summary.user(userID)

	summary.Overall.Total++
	user.Total++

	expWeight := exp.Weight()
	predWeight := pred.Weight()

	absErr := math.Abs(expWeight - predWeight)
	summary.Overall.AbsErr = append(summary.Overall.AbsErr, absErr)
	user.AbsErr = append(user.AbsErr, absErr)

	lo, hi := exp.Range()
	if predWeight >= lo && predWeight <= hi {
		summary.Overall.Agree++
		user.Agree++
	}

	// Decision accuracy only counts entries where both sides labeled one.
	if exp.Decision != nil && pred.Decision != nil {
		summary.Overall.DecisionTotal++
		user.DecisionTotal++
		if *exp.Decision == *pred.Decision {
			summary.Overall.DecisionOK++
			user.DecisionOK++
		}
	}
}

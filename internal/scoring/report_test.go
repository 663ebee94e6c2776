package scoring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport_WorkedExample(t *testing.T) {
	summary := NewSummary()
	summary.Overall = Stats{Total: 1, Agree: 1, AbsErr: []float64{5}, DecisionOK: 1, DecisionTotal: 1}
	summary.PerUser["u1"] = &Stats{Total: 1, Agree: 1, AbsErr: []float64{5}, DecisionOK: 1, DecisionTotal: 1}

	var buf bytes.Buffer
	WriteReport(&buf, summary)

	want := "Main lift load agreement: 1/1 = 1.00\n" +
		"Main lift MAE (point label): 5.00 lb\n" +
		"Decision accuracy: 1/1 = 1.00\n" +
		"Per-user:\n" +
		"  u1: agree 1.00, MAE 5.00 lb, decisionAcc 1.00, n=1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_EmptyAggregatesGuardDivision(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, NewSummary())

	want := "Main lift load agreement: 0/0 = 0.00\n" +
		"Main lift MAE (point label): NaN lb\n" +
		"Decision accuracy: 0/0 = 0.00\n" +
		"Per-user:\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_UsersSortedAscending(t *testing.T) {
	summary := NewSummary()
	for _, user := range []string{"zoe", "amy", "mia"} {
		summary.PerUser[user] = &Stats{Total: 1, Agree: 1, AbsErr: []float64{0}}
		summary.Overall.Total++
		summary.Overall.Agree++
		summary.Overall.AbsErr = append(summary.Overall.AbsErr, 0)
	}

	var buf bytes.Buffer
	WriteReport(&buf, summary)

	want := "Main lift load agreement: 3/3 = 1.00\n" +
		"Main lift MAE (point label): 0.00 lb\n" +
		"Decision accuracy: 0/0 = 0.00\n" +
		"Per-user:\n" +
		"  amy: agree 1.00, MAE 0.00 lb, decisionAcc 0.00, n=1\n" +
		"  mia: agree 1.00, MAE 0.00 lb, decisionAcc 0.00, n=1\n" +
		"  zoe: agree 1.00, MAE 0.00 lb, decisionAcc 0.00, n=1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_UserWithoutErrorSamplesPrintsNaN(t *testing.T) {
	summary := NewSummary()
	summary.PerUser["u1"] = &Stats{}

	var buf bytes.Buffer
	WriteReport(&buf, summary)

	assert.Contains(t, buf.String(), "  u1: agree 0.00, MAE NaN lb, decisionAcc 0.00, n=0\n")
}

func TestWriteReport_Idempotent(t *testing.T) {
	dataset := []Record{datasetRecord("u1", LiftPrescription{
		Lift:               "squat",
		PrescribedWeightLb: weight(200),
		AcceptableRangeLb:  []float64{190, 210},
		Decision:           decision("increase"),
	})}
	predictions := []Record{predictionRecord("u1", LiftPrescription{
		Lift:               "squat",
		PrescribedWeightLb: weight(205),
		Decision:           decision("increase"),
	})}

	var first, second bytes.Buffer
	WriteReport(&first, NewScorer(nil).Score(dataset, predictions))
	WriteReport(&second, NewScorer(nil).Score(dataset, predictions))

	assert.Equal(t, first.String(), second.String())
}

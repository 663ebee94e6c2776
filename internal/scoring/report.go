package scoring

import (
	"fmt"
	"io"
)

// WriteReport prints the scoring report. The format is stable: fixed header
// lines followed by one per-user line per scored user, sorted ascending by
// user ID.
func WriteReport(w io.Writer, summary *Summary) {
	overall := &summary.Overall

	fmt.Fprintf(w, "Main lift load agreement: %d/%d = %.2f\n",
		overall.Agree, overall.Total, overall.AgreeRate())
	fmt.Fprintf(w, "Main lift MAE (point label): %.2f lb\n", overall.MAE())
	fmt.Fprintf(w, "Decision accuracy: %d/%d = %.2f\n",
		overall.DecisionOK, overall.DecisionTotal, overall.DecisionAccuracy())

	fmt.Fprintln(w, "Per-user:")
	for _, userID := range summary.Users() {
		stats := summary.PerUser[userID]
		fmt.Fprintf(w, "  %s: agree %.2f, MAE %.2f lb, decisionAcc %.2f, n=%d\n",
			userID, stats.AgreeRate(), stats.MAE(), stats.DecisionAccuracy(), stats.Total)
	}
}

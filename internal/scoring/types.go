package scoring

import (
	"math"
	"sort"
)

// MainLifts is the default set of lifts that count toward scoring.
// Prescriptions for any other lift are ignored.
var MainLifts = []string{"squat", "bench", "deadlift", "ohp"}

// Record is one line of a JSONL input file. Dataset records carry the
// expected prescription under `expected`; prediction records carry the
// engine's prescription under `engine_output`.
type Record struct {
	UserID       string        `json:"user_id"`
	Date         string        `json:"date"`
	SessionType  string        `json:"session_type"`
	Expected     *Prescription `json:"expected,omitempty"`
	EngineOutput *Prescription `json:"engine_output,omitempty"`
}

// Prescription wraps the ordered list of lift prescriptions for a session.
type Prescription struct {
	SessionPrescriptionForToday []LiftPrescription `json:"session_prescription_for_today"`
}

// LiftPrescription is a single prescribed lift. All fields beyond the lift
// name are optional; absence means "use the default" rather than an error.
type LiftPrescription struct {
	Lift               string    `json:"lift"`
	PrescribedWeightLb *float64  `json:"prescribed_weight_lb"`
	AcceptableRangeLb  []float64 `json:"acceptable_range_lb"`
	Decision           *string   `json:"decision"`
}

// Weight returns the prescribed weight, coercing a missing or null value to 0.
func (p LiftPrescription) Weight() float64 {
	if p.PrescribedWeightLb == nil {
		return 0
	}
	return *p.PrescribedWeightLb
}

// Range returns the acceptable weight bounds. Without a usable two-element
// range the prescription collapses to a single-point range at the prescribed
// weight, so agreement then requires an exact match.
func (p LiftPrescription) Range() (lo, hi float64) {
	if len(p.AcceptableRangeLb) >= 2 {
		return p.AcceptableRangeLb[0], p.AcceptableRangeLb[1]
	}
	w := p.Weight()
	return w, w
}

// Key is the session identity used to join a dataset record to its
// prediction.
type Key struct {
	UserID      string
	Date        string
	SessionType string
}

// Key returns the identity key of the record.
func (r Record) Key() Key {
	return Key{UserID: r.UserID, Date: r.Date, SessionType: r.SessionType}
}

// ExpectedPrescriptions returns the expected lift list, or nil when the
// record has none.
func (r Record) ExpectedPrescriptions() []LiftPrescription {
	if r.Expected == nil {
		return nil
	}
	return r.Expected.SessionPrescriptionForToday
}

// PredictedPrescriptions returns the engine's lift list, or nil when the
// record has none.
func (r Record) PredictedPrescriptions() []LiftPrescription {
	if r.EngineOutput == nil {
		return nil
	}
	return r.EngineOutput.SessionPrescriptionForToday
}

// Stats accumulates scoring counters for one scope (overall or a single
// user).
type Stats struct {
	Total         int
	Agree         int
	AbsErr        []float64
	DecisionOK    int
	DecisionTotal int
}

// AgreeRate returns agreements over evaluated entries, 0 when nothing was
// evaluated.
func (s *Stats) AgreeRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Agree) / float64(s.Total)
}

// MAE returns the mean absolute error over the collected samples, NaN when
// there are none.
func (s *Stats) MAE() float64 {
	if len(s.AbsErr) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, e := range s.AbsErr {
		sum += e
	}
	return sum / float64(len(s.AbsErr))
}

// DecisionAccuracy returns decision matches over decision comparisons, 0
// when no comparison happened.
func (s *Stats) DecisionAccuracy() float64 {
	if s.DecisionTotal == 0 {
		return 0
	}
	return float64(s.DecisionOK) / float64(s.DecisionTotal)
}

// Summary holds the final aggregate state of a scoring run.
type Summary struct {
	Overall Stats
	PerUser map[string]*Stats
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{PerUser: make(map[string]*Stats)}
}

func (s *Summary) user(id string) *Stats {
	st, ok := s.PerUser[id]
	if !ok {
		st = &Stats{}
		s.PerUser[id] = st
	}
	return st
}

// Users returns the scored user IDs in ascending order.
func (s *Summary) Users() []string {
	users := make([]string, 0, len(s.PerUser))
	for u := range s.PerUser {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

package evaluate

import "time"

// Result is the scored critique of a submitted prompt. Created fresh per
// submission and never mutated after Evaluate returns.
type Result struct {
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	XP           int       `json:"xp"`
	Timestamp    time.Time `json:"timestamp"`

	// Fallback marks a degraded result built from an unparsable reply.
	// Not part of the API payload.
	Fallback bool `json:"-"`
}

// finalize applies the derived fields every result gets, parsed or
// fallback: xp = score/2 and the evaluation instant.
func (r *Result) finalize(now time.Time) {
	r.XP = r.Score / 2
	r.Timestamp = now.UTC()
}

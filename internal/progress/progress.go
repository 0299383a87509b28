package progress

import (
	"time"

	"github.com/abhisek/promptquest/internal/evaluate"
)

// Submission records one graded prompt. Append-only; owned by the
// submitting user's Progress record.
type Submission struct {
	ID          string    `json:"id"`
	ChallengeID int       `json:"challengeId"`
	Score       int       `json:"score"`
	XP          int       `json:"xp"`
	Timestamp   time.Time `json:"timestamp"`
}

// Progress is one user's cumulative state. Level is always derived from
// TotalXP; CompletedChallenges holds each challenge id at most once, in
// the order it was first cleared.
type Progress struct {
	UserID              string       `json:"userId"`
	Username            string       `json:"username"`
	Level               int          `json:"level"`
	TotalXP             int          `json:"totalXP"`
	CompletedChallenges []int        `json:"completedChallenges"`
	Submissions         []Submission `json:"submissions"`
}

// completeScore is the minimum score that marks a challenge cleared.
const completeScore = 70

// xpPerLevel is the XP span of one level.
const xpPerLevel = 100

// levelFor derives the level from cumulative XP.
func levelFor(totalXP int) int {
	return totalXP/xpPerLevel + 1
}

// Store is the mutable per-user progress state, keyed by user id.
// Implementations are owned by the composition root and injected into
// the request layer.
type Store interface {
	// Get returns the user's progress, or a default-initialized view if
	// none exists. Reading an absent user does not materialize a record.
	Get(userID string) Progress

	// RecordSubmission folds an evaluation result into the user's
	// progress, creating the record on first submission. It never fails.
	// The returned Progress is the state after the update.
	RecordSubmission(userID, username string, challengeID int, res *evaluate.Result) Progress
}

package progress

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/promptquest/internal/evaluate"
)

// MemoryStore keeps all progress in process memory. Nothing survives a
// restart. The mutex guards the maps themselves; requests still
// interleave freely with each other, which is fine at this scale.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*Progress
	order []string // insertion order, used by Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*Progress)}
}

// Seed materializes an empty record for the given identity so the
// profile and leaderboard show the player from startup, before any
// submission. Seeding an existing user is a no-op.
func (s *MemoryStore) Seed(userID, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialize(userID, username)
}

// Get returns a copy of the user's progress, or a default view for an
// unknown user without creating a record.
func (s *MemoryStore) Get(userID string) Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.users[userID]
	if !ok {
		return Progress{
			UserID:              userID,
			Username:            "NewUser",
			Level:               1,
			TotalXP:             0,
			CompletedChallenges: []int{},
			Submissions:         []Submission{},
		}
	}
	return copyProgress(p)
}

// RecordSubmission appends the submission, accumulates XP, recomputes
// the level, and marks the challenge complete on a passing score.
func (s *MemoryStore) RecordSubmission(userID, username string, challengeID int, res *evaluate.Result) Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.materialize(userID, username)

	p.Submissions = append(p.Submissions, Submission{
		ID:          uuid.NewString(),
		ChallengeID: challengeID,
		Score:       res.Score,
		XP:          res.XP,
		Timestamp:   res.Timestamp,
	})

	p.TotalXP += res.XP
	p.Level = levelFor(p.TotalXP)

	if res.Score >= completeScore && !containsInt(p.CompletedChallenges, challengeID) {
		p.CompletedChallenges = append(p.CompletedChallenges, challengeID)
	}

	return copyProgress(p)
}

// Snapshot returns copies of every progress record in insertion order.
func (s *MemoryStore) Snapshot() []Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Progress, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyProgress(s.users[id]))
	}
	return out
}

// materialize returns the user's record, creating an empty one on first
// use. Callers must hold the write lock.
func (s *MemoryStore) materialize(userID, username string) *Progress {
	p, ok := s.users[userID]
	if !ok {
		p = &Progress{
			UserID:              userID,
			Username:            username,
			Level:               1,
			TotalXP:             0,
			CompletedChallenges: []int{},
			Submissions:         []Submission{},
		}
		s.users[userID] = p
		s.order = append(s.order, userID)
	}
	return p
}

func copyProgress(p *Progress) Progress {
	cp := *p
	cp.CompletedChallenges = append(make([]int, 0, len(p.CompletedChallenges)), p.CompletedChallenges...)
	cp.Submissions = append(make([]Submission, 0, len(p.Submissions)), p.Submissions...)
	return cp
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

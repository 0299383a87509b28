package progress

import "sort"

// RankedEntry is one leaderboard row.
type RankedEntry struct {
	Rank                int    `json:"rank"`
	Username            string `json:"username"`
	Level               int    `json:"level"`
	TotalXP             int    `json:"totalXP"`
	CompletedChallenges int    `json:"completedChallenges"`
}

// Snapshotter is the read surface the leaderboard projects over.
type Snapshotter interface {
	Snapshot() []Progress
}

// TopN ranks the store's users by total XP, descending, and returns at
// most n entries with 1-based ranks. Ties keep the store's insertion
// order; no stable secondary key is defined. Recomputed on every call.
func TopN(s Snapshotter, n int) []RankedEntry {
	users := s.Snapshot()

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalXP > users[j].TotalXP
	})

	if n > len(users) {
		n = len(users)
	}
	if n < 0 {
		n = 0
	}

	out := make([]RankedEntry, 0, n)
	for i := 0; i < n; i++ {
		u := users[i]
		out = append(out, RankedEntry{
			Rank:                i + 1,
			Username:            u.Username,
			Level:               u.Level,
			TotalXP:             u.TotalXP,
			CompletedChallenges: len(u.CompletedChallenges),
		})
	}
	return out
}

package progress

import (
	"testing"
	"time"

	"github.com/abhisek/promptquest/internal/evaluate"
)

func result(score int) *evaluate.Result {
	return &evaluate.Result{
		Score:     score,
		XP:        score / 2,
		Timestamp: time.Now().UTC(),
	}
}

func TestRecordSubmission_CreatesUserLazily(t *testing.T) {
	s := NewMemoryStore()

	p := s.RecordSubmission("demo-user", "DemoUser", 1, result(85))
	if p.UserID != "demo-user" || p.Username != "DemoUser" {
		t.Fatalf("unexpected identity: %+v", p)
	}
	if p.TotalXP != 42 {
		t.Errorf("totalXP = %d, want 42", p.TotalXP)
	}
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if len(p.Submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(p.Submissions))
	}
	if p.Submissions[0].ID == "" {
		t.Error("submission id not assigned")
	}
	if len(p.CompletedChallenges) != 1 || p.CompletedChallenges[0] != 1 {
		t.Errorf("completedChallenges = %v, want [1]", p.CompletedChallenges)
	}
}

func TestSeed_MaterializesEmptyRecord(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("demo-user", "DemoUser")

	p := s.Get("demo-user")
	if p.Username != "DemoUser" {
		t.Fatalf("username = %q, want DemoUser", p.Username)
	}
	if p.TotalXP != 0 || p.Level != 1 {
		t.Fatalf("seeded record should start at level 1 with 0 XP: %+v", p)
	}
	if len(p.Submissions) != 0 || len(p.CompletedChallenges) != 0 {
		t.Fatalf("seeded record should have no activity: %+v", p)
	}

	// A seeded user ranks immediately, with 0 XP.
	top := TopN(s, 10)
	if len(top) != 1 {
		t.Fatalf("expected 1 leaderboard row after seeding, got %d", len(top))
	}
	if top[0].Rank != 1 || top[0].Username != "DemoUser" || top[0].TotalXP != 0 {
		t.Fatalf("unexpected seeded row: %+v", top[0])
	}

	// Other users are still not materialized by Get.
	s.Get("ghost")
	if len(s.Snapshot()) != 1 {
		t.Fatal("Get must not create records for unseeded users")
	}
}

func TestSeed_ExistingUserUntouched(t *testing.T) {
	s := NewMemoryStore()
	s.RecordSubmission("demo-user", "DemoUser", 1, result(85))

	s.Seed("demo-user", "SomeoneElse")

	p := s.Get("demo-user")
	if p.Username != "DemoUser" {
		t.Errorf("username = %q, want DemoUser", p.Username)
	}
	if p.TotalXP != 42 || len(p.Submissions) != 1 {
		t.Fatalf("seeding must not reset progress: %+v", p)
	}
	if len(s.Snapshot()) != 1 {
		t.Fatal("seeding an existing user must not add a record")
	}
}

func TestGet_DoesNotMaterialize(t *testing.T) {
	s := NewMemoryStore()

	p := s.Get("ghost")
	if p.Level != 1 || p.TotalXP != 0 {
		t.Fatalf("default view wrong: %+v", p)
	}
	if len(s.Snapshot()) != 0 {
		t.Fatal("Get must not create a stored record")
	}

	// Recording afterwards still creates exactly one record.
	s.RecordSubmission("ghost", "UserGhost", 1, result(10))
	if len(s.Snapshot()) != 1 {
		t.Fatal("RecordSubmission must materialize the record")
	}
}

func TestLevelInvariant(t *testing.T) {
	s := NewMemoryStore()

	scores := []int{85, 100, 90, 100, 60, 100, 100}
	for _, sc := range scores {
		p := s.RecordSubmission("u1", "User1", 1, result(sc))
		want := p.TotalXP/100 + 1
		if p.Level != want {
			t.Fatalf("after score %d: level = %d, want %d (totalXP=%d)", sc, p.Level, want, p.TotalXP)
		}
	}
}

func TestCompletedChallenges_ThresholdAndDedup(t *testing.T) {
	s := NewMemoryStore()

	// Below threshold: not completed.
	p := s.RecordSubmission("u1", "User1", 3, result(60))
	if len(p.CompletedChallenges) != 0 {
		t.Fatalf("score 60 should not complete: %v", p.CompletedChallenges)
	}

	// At/above threshold: completed once.
	p = s.RecordSubmission("u1", "User1", 3, result(75))
	if len(p.CompletedChallenges) != 1 || p.CompletedChallenges[0] != 3 {
		t.Fatalf("score 75 should complete challenge 3: %v", p.CompletedChallenges)
	}

	// Repeat pass: no duplicate.
	p = s.RecordSubmission("u1", "User1", 3, result(95))
	if len(p.CompletedChallenges) != 1 {
		t.Fatalf("challenge 3 duplicated: %v", p.CompletedChallenges)
	}

	// TotalXP sums every submission regardless of completion.
	wantXP := 30 + 37 + 47
	if p.TotalXP != wantXP {
		t.Errorf("totalXP = %d, want %d", p.TotalXP, wantXP)
	}
	if len(p.Submissions) != 3 {
		t.Errorf("submissions = %d, want 3", len(p.Submissions))
	}
}

func TestTotalXPMonotonic(t *testing.T) {
	s := NewMemoryStore()

	prev := 0
	for _, sc := range []int{0, 100, 1, 50, 0} {
		p := s.RecordSubmission("u1", "User1", 1, result(sc))
		if p.TotalXP < prev {
			t.Fatalf("totalXP decreased: %d -> %d", prev, p.TotalXP)
		}
		prev = p.TotalXP
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.RecordSubmission("u1", "User1", 1, result(80))

	p := s.Get("u1")
	p.TotalXP = 9999
	p.CompletedChallenges = append(p.CompletedChallenges, 42)

	fresh := s.Get("u1")
	if fresh.TotalXP == 9999 || len(fresh.CompletedChallenges) != 1 {
		t.Fatal("mutating a returned Progress leaked into the store")
	}
}

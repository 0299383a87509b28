package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/progress"
)

type homePage struct {
	basePage
	Featured    []*challenge.Challenge
	Leaderboard []progress.RankedEntry
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r.Context())
	featured := s.catalog.All()
	if len(featured) > 3 {
		featured = featured[:3]
	}
	s.render(w, "home", homePage{
		basePage:    s.newBasePage(lang, "home"),
		Featured:    featured,
		Leaderboard: progress.TopN(s.store, 10),
	})
}

type challengesPage struct {
	basePage
	Challenges []*challenge.Challenge
	Completed  map[int]bool
}

func (s *Server) handleChallenges(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r.Context())
	p := s.store.Get(s.cfg.ID)
	completed := make(map[int]bool, len(p.CompletedChallenges))
	for _, id := range p.CompletedChallenges {
		completed[id] = true
	}
	s.render(w, "challenges", challengesPage{
		basePage:   s.newBasePage(lang, "challenges"),
		Challenges: s.catalog.All(),
		Completed:  completed,
	})
}

type challengePage struct {
	basePage
	Challenge *challenge.Challenge
}

func (s *Server) handleChallengeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Challenge not found", http.StatusNotFound)
		return
	}
	ch, err := s.catalog.Get(id)
	if err != nil {
		http.Error(w, "Challenge not found", http.StatusNotFound)
		return
	}
	lang := langFrom(r.Context())
	s.render(w, "challenge", challengePage{
		basePage:  s.newBasePage(lang, "challenges"),
		Challenge: ch,
	})
}

type leaderboardPage struct {
	basePage
	Entries []progress.RankedEntry
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r.Context())
	s.render(w, "leaderboard", leaderboardPage{
		basePage: s.newBasePage(lang, "leaderboard"),
		Entries:  progress.TopN(s.store, 10),
	})
}

type profilePage struct {
	basePage
	Progress progress.Progress
	Total    int
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r.Context())
	s.render(w, "profile", profilePage{
		basePage: s.newBasePage(lang, "profile"),
		Progress: s.store.Get(s.cfg.ID),
		Total:    s.catalog.Len(),
	})
}

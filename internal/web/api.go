package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/promptquest/internal/challenge"
)

type submitRequest struct {
	ChallengeID int    `json:"challengeId"`
	Prompt      string `json:"prompt"`
}

// handleSubmitPrompt runs the evaluation pipeline: look up the
// challenge, grade the prompt, record the result, return the
// evaluation. The upstream call completes (or fails) strictly before
// any progress mutation.
func (s *Server) handleSubmitPrompt(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		respondError(w, http.StatusBadRequest, "Prompt is required", "")
		return
	}

	ch, err := s.catalog.Get(req.ChallengeID)
	if err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "Challenge not found"})
			return
		}
		respondError(w, http.StatusInternalServerError, "Evaluation failed", err.Error())
		return
	}

	lang := langFrom(r.Context())
	result, err := s.evaluator.Evaluate(r.Context(), prompt, ch, lang)
	if err != nil {
		slog.Error("prompt evaluation failed",
			"challenge_id", req.ChallengeID,
			"error", err,
		)
		respondError(w, http.StatusInternalServerError, "Evaluation failed", err.Error())
		return
	}

	s.store.RecordSubmission(s.cfg.ID, s.cfg.Username, ch.ID, result)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/i18n"
	"github.com/abhisek/promptquest/internal/llm"
)

// ErrNotConfigured indicates no LLM credential is available. Evaluation
// aborts entirely; there is no fallback for a missing credential.
var ErrNotConfigured = errors.New("no LLM credential configured")

// Config holds evaluation request parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the grading defaults: bounded output, moderate
// sampling so feedback stays varied.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   800,
		Temperature: 0.7,
	}
}

// Evaluator grades submitted prompts against a challenge by asking an
// LLM to apply the scoring rubric. It has no side effects beyond the
// network call; progress bookkeeping belongs to the caller.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// New creates an Evaluator. A nil provider is allowed: every Evaluate
// call then fails with ErrNotConfigured, which keeps the rest of the app
// usable without a credential.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Evaluate sends the user's prompt and the challenge to the grading
// model and normalizes the reply. The caller must pass a non-empty,
// trimmed prompt. Upstream failures propagate; an unparsable reply from
// a successful call is absorbed into a degraded fallback result.
func (e *Evaluator) Evaluate(ctx context.Context, userPrompt string, ch *challenge.Challenge, lang i18n.Lang) (*Result, error) {
	if e.provider == nil {
		return nil, ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "prompt-grading")

	req := llm.Request{
		System: rubricSystemPrompt(lang),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingMessage(userPrompt, ch, lang)},
		},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading request failed: %w", err)
	}

	result := normalize(string(resp.Content), lang)
	result.finalize(e.now())
	return result, nil
}

// fencedJSON matches a JSON object wrapped in a markdown code fence,
// with or without a "json" language tag.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// normalize turns the raw reply text into a Result. The reply should
// contain a JSON object, optionally fenced; anything that fails to parse
// or violates the evaluation schema becomes the centralized fallback.
func normalize(raw string, lang i18n.Lang) *Result {
	candidate := strings.TrimSpace(raw)
	if m := fencedJSON.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}

	if err := llm.ValidateAgainstSchema(EvaluationSchema, json.RawMessage(candidate)); err != nil {
		return fallbackResult(raw, lang)
	}

	var result Result
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return fallbackResult(raw, lang)
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Improvements == nil {
		result.Improvements = []string{}
	}
	return &result
}

// fallbackResult is the degraded result for unparsable-but-successful
// replies: neutral score, the raw text as feedback, and localized
// placeholder lists.
func fallbackResult(raw string, lang i18n.Lang) *Result {
	return &Result{
		Score:        50,
		Feedback:     raw,
		Strengths:    []string{fallbackStrength(lang)},
		Improvements: []string{fallbackImprovement(lang)},
		Fallback:     true,
	}
}

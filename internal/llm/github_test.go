package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGitHubProvider(t *testing.T, handler http.HandlerFunc) *GitHubProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGitHubProvider(GitHubConfig{
		Token:   "ghp_test",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func githubCompletionBody(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     45,
			"completion_tokens": 30,
			"total_tokens":      75,
		},
	}
}

func TestGitHubProvider_HappyPath(t *testing.T) {
	var gotAuth string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(githubCompletionBody(
			`{"score":72,"feedback":"Solid structure.","strengths":["clear goal"],"improvements":["tighter constraints"]}`,
			"stop",
		))
	}

	p := newTestGitHubProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:      "You are a prompt engineering evaluator.",
		Messages:    []Message{{Role: RoleUser, Content: "Evaluate this prompt."}},
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer ghp_test" {
		t.Fatalf("expected the GitHub token as bearer auth, got %q", gotAuth)
	}
	if resp.Usage.TotalTokens != 75 {
		t.Fatalf("expected 75 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestGitHubProvider_MaxTokensTruncation(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(githubCompletionBody(`{"score":72,"feed`, "length"))
	}

	p := newTestGitHubProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Evaluate this prompt."}},
		MaxTokens: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Fatalf("expected stop reason 'max_tokens', got %q", resp.StopReason)
	}
}

func TestGitHubProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := newTestGitHubProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestNewGitHubProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := NewGitHubProvider(GitHubConfig{Token: "ghp_test", Model: "gpt-4o-mini"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "gpt-4o-mini" {
			t.Errorf("model = %q, want %q", p.ModelID(), "gpt-4o-mini")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := NewGitHubProvider(GitHubConfig{Model: "gpt-4o-mini"})
		if err == nil {
			t.Fatal("expected error for missing token")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewGitHubProvider(GitHubConfig{Token: "ghp_test", Model: "Phi-3.5-mini-instruct"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID is used as-is (no friendly-name mapping).
		if p.ModelID() != "Phi-3.5-mini-instruct" {
			t.Errorf("model = %q, want %q", p.ModelID(), "Phi-3.5-mini-instruct")
		}
	})
}

package llm

import "fmt"

const defaultGitHubBaseURL = "https://models.inference.ai.azure.com"

// GitHubProvider wraps OpenAIProvider with GitHub Models defaults.
// GitHub Models exposes an OpenAI-compatible API authenticated with a
// GitHub token, so the underlying SDK is reused.
type GitHubProvider struct {
	*OpenAIProvider
}

// NewGitHubProvider creates a provider targeting the GitHub Models API.
func NewGitHubProvider(cfg GitHubConfig) (*GitHubProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGitHubBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.Token,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	return &GitHubProvider{OpenAIProvider: newOpenAIProviderRaw(oaiCfg)}, nil
}

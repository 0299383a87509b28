package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/promptquest/internal/i18n"
	"github.com/abhisek/promptquest/internal/llm"
)

// Config holds all configuration for promptquest.
type Config struct {
	Server ServerConfig
	LLM    llm.Config
	Data   DataConfig
	User   UserConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DataConfig points at the static data files.
type DataConfig struct {
	// ChallengesDir holds the YAML challenge definitions. Empty means
	// the embedded default set.
	ChallengesDir string
}

// UserConfig is the single trusted identity used for all traffic.
// There is no authentication in this design.
type UserConfig struct {
	ID          string
	Username    string
	DefaultLang i18n.Lang
}

// Load loads configuration from environment variables. The LLM
// credential is discovered from standard env vars when no provider is
// pinned explicitly. A missing credential is not fatal here; the
// evaluator reports it per request.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 3000),
		},
		Data: DataConfig{
			ChallengesDir: getEnv("PROMPTQUEST_CHALLENGES_DIR", ""),
		},
		User: UserConfig{
			ID:          getEnv("PROMPTQUEST_USER_ID", "demo-user"),
			Username:    getEnv("PROMPTQUEST_USERNAME", "DemoUser"),
			DefaultLang: i18n.LangJA,
		},
	}

	if os.Getenv("PROMPTQUEST_LLM_PROVIDER") != "" {
		cfg.LLM = llm.ConfigFromEnv()
	} else if discovered, ok := llm.DiscoverConfig(); ok {
		cfg.LLM = discovered
	} else {
		cfg.LLM = llm.DefaultConfig()
		cfg.LLM.Provider = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.User.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if c.LLM.Provider != "" {
		if err := c.LLM.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasLLM reports whether a grading provider is configured.
func (c *Config) HasLLM() bool {
	return c.LLM.Provider != ""
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

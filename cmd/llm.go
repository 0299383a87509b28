package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/config"
	"github.com/abhisek/promptquest/internal/evaluate"
	"github.com/abhisek/promptquest/internal/i18n"
	"github.com/abhisek/promptquest/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the grading LLM configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a test grading request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cfg.HasLLM() {
			return fmt.Errorf("no LLM credential found (set GITHUB_TOKEN, OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY)")
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, logger)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		catalog, err := challenge.LoadEmbedded()
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		ch, err := catalog.Get(1)
		if err != nil {
			return fmt.Errorf("load probe challenge: %w", err)
		}

		lang, _ := cmd.Flags().GetString("lang")
		l := i18n.Lang(lang)
		if !l.Valid() {
			l = i18n.LangJA
		}

		fmt.Printf("Provider:  %s\n", cfg.LLM.Provider)
		fmt.Printf("Model:     %s\n", provider.ModelID())
		fmt.Println("Sending test grading request...")

		evaluator := evaluate.New(provider, evaluate.DefaultConfig())
		start := time.Now()
		result, err := evaluator.Evaluate(cmd.Context(),
			"Summarize the following article in three bullet points, each under 15 words.", ch, l)
		if err != nil {
			return fmt.Errorf("grading request failed: %w", err)
		}

		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Score:     %d/100\n", result.Score)
		fmt.Printf("XP:        %d\n", result.XP)
		if result.Fallback {
			fmt.Println("Note:      reply did not match the expected format, fallback applied")
		}
		if cost := llm.LookupCost(provider.ModelID()); cost != nil {
			fmt.Printf("Pricing:   $%.2f/M input, $%.2f/M output\n", cost.InputPerMTok, cost.OutputPerMTok)
		}
		return nil
	},
}

func init() {
	llmCheckCmd.Flags().StringP("lang", "l", "ja", "Rubric language (ja or en)")
	llmCmd.AddCommand(llmCheckCmd)
}

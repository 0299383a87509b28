package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/config"
	"github.com/abhisek/promptquest/internal/evaluate"
	"github.com/abhisek/promptquest/internal/i18n"
	"github.com/abhisek/promptquest/internal/llm"
	"github.com/abhisek/promptquest/internal/progress"
	"github.com/abhisek/promptquest/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PromptQuest web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("starting promptquest",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"llm_provider", cfg.LLM.Provider,
	)

	catalog, err := challenge.LoadDir(cfg.Data.ChallengesDir)
	if err != nil {
		return fmt.Errorf("load challenges: %w", err)
	}
	slog.Info("challenges loaded", "count", catalog.Len())

	locales, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	// Without a credential the server still runs; grading requests fail
	// per request instead.
	var provider llm.Provider
	if cfg.HasLLM() {
		provider, err = llm.NewProvider(cmd.Context(), cfg.LLM, logger)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}
		slog.Info("LLM provider ready", "model", provider.ModelID())
	} else {
		slog.Warn("no LLM credential found, prompt evaluation is disabled")
	}

	evaluator := evaluate.New(provider, evaluate.DefaultConfig())
	store := progress.NewMemoryStore()
	store.Seed(cfg.User.ID, cfg.User.Username)

	srv, err := web.NewServer(cfg.User, catalog, evaluator, store, locales)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("promptquest stopped")
	return nil
}

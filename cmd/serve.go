package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zaeon-io/zaeon-core/internal/api"
	"github.com/zaeon-io/zaeon-core/internal/chat"
	"github.com/zaeon-io/zaeon-core/internal/config"
	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/llm"
	"github.com/zaeon-io/zaeon-core/internal/persona"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dbPath := cfg.DBPath
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	slog.Info("Database connected", "path", dbPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	slog.Info("LLM provider ready", "model", provider.ModelID())

	registry, err := persona.Load()
	if err != nil {
		return fmt.Errorf("load personas: %w", err)
	}

	resolver := identity.NewResolver(s.AccountRepo())
	chatSvc := chat.NewService(registry, provider, s.WorkspaceRepo(), resolver, slog.Default())
	handler := api.NewHandler(chatSvc, s.WorkspaceRepo(), resolver, slog.Default())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.Router(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "addr", srv.Addr, "dev", cfg.IsDevelopment())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

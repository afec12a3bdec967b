// Package main implements the entry point for the PlaNovo API server, which
// turns feature ideas into Software Requirements Specification documents
// and keeps the local user table in sync with Clerk.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up the structured logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider)

	if cfg.Database.URL != "" {
		l.Debug("Database configuration", "url_present", true)
	}
	if cfg.Clerk.WebhookSecret == "" {
		l.Warn("Clerk webhook secret not configured, webhook endpoint will reject events")
	}

	return cfg, l, nil
}

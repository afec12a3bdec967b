package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
	"github.com/planovo/planovo-api/internal/platform/llm"
	"github.com/planovo/planovo-api/internal/platform/postgres"
	"github.com/planovo/planovo-api/internal/service"
	"github.com/planovo/planovo-api/internal/service/auth"
	"github.com/planovo/planovo-api/internal/service/srs"
	"github.com/planovo/planovo-api/internal/store"
	"github.com/planovo/planovo-api/internal/webhook"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when no database is configured.
	db *sql.DB

	healthChecker store.HealthChecker
	userService   service.UserService

	srsService      srs.Generator
	webhookHandler  *webhook.Handler
	sessionVerifier auth.SessionVerifier
}

// newApplication wires the application. Only invalid configuration is
// fatal: a missing LLM credential or database leaves the process serving
// its remaining endpoints.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("database unavailable, continuing without it",
				"url", postgres.MaskURL(cfg.Database.URL),
				"error", err)
		} else {
			app.db = db
		}
	} else {
		logger.Warn("database URL not configured")
	}

	backend := llm.NewGeneratorOrUnavailable(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err := app.wire(backend); err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// wire builds the services and handlers on top of app.db and backend.
func (app *application) wire(backend generation.Generator) error {
	cfg := app.config

	template, err := generation.LoadTemplate(cfg.LLM.PromptTemplate, cfg.LLM.PromptTemplatesFile)
	if err != nil {
		return fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.srsService, err = srs.NewService(
		backend,
		template,
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
		app.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create SRS service: %w", err)
	}

	// Interfaces stay nil rather than wrapping a nil pointer.
	var userStore store.UserStore
	if app.db != nil {
		userStore = postgres.NewPostgresUserStore(app.db, app.logger)
		app.healthChecker = postgres.NewHealthCheck(app.db)
	}
	app.userService = service.NewUserService(userStore, app.logger)

	app.webhookHandler, err = webhook.NewHandler(cfg.Clerk.WebhookSecret, app.userService, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create webhook handler: %w", err)
	}

	if cfg.Auth.ClerkJWTPublicKey != "" {
		app.sessionVerifier, err = auth.NewClerkVerifier(cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to initialize session verifier: %w", err)
		}
		app.logger.Info("Clerk session authentication enabled",
			"authorized_parties", len(cfg.Auth.AuthorizedParties))
	}

	return nil
}

// Run serves HTTP until ctx is canceled, then shuts down.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}

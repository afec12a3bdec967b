package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/planovo/planovo-api/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// MigrationsTable is the goose version table.
const MigrationsTable = "schema_migrations"

// Migration commands. MigrateVersion is served by SchemaVersion.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// slogGooseLogger adapts goose.Logger to slog. Fatalf does not exit; the
// error is returned by the goose call instead.
type slogGooseLogger struct {
	l *slog.Logger
}

func (g slogGooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info(fmt.Sprintf(format, v...))
}

func (g slogGooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error(fmt.Sprintf(format, v...))
}

// Migrate runs up, down or status against db using the embedded migrations.
// The applied version is read with SchemaVersion.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger, command string) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := configureGoose(logger); err != nil {
		return err
	}

	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))
	log.Info("Starting migration operation")

	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, ".")
	case MigrateDown:
		err = goose.DownContext(ctx, db, ".")
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		log.Error("Migration operation failed", slog.String("error", err.Error()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("Migration operation completed")
	return nil
}

// SchemaVersion returns the applied goose version.
func SchemaVersion(ctx context.Context, db *sql.DB, logger *slog.Logger) (int64, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := configureGoose(logger); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

func configureGoose(logger *slog.Logger) error {
	goose.SetLogger(slogGooseLogger{l: logger})
	goose.SetTableName(MigrationsTable)
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

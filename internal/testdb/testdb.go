// Package testdb provides a migrated PostgreSQL connection for integration
// tests. Tests are skipped when no database URL is available.
package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/planovo/planovo-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns DATABASE_URL, falling back to
// PLANOVO_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("PLANOVO_TEST_DB_URL")
}

// GetTestDB opens the test database, applies all migrations and empties the
// users table. The connection is closed when the test finishes.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping database integration test")
	}

	db, err := sql.Open(postgres.DriverName, dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database is unreachable")

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.Migrate(context.Background(), db, quiet, postgres.MigrateUp))

	ResetUsers(t, db)
	return db
}

// ResetUsers deletes every row of the users table.
func ResetUsers(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	_, err := db.ExecContext(ctx, "DELETE FROM users")
	require.NoError(t, err, "failed to reset users table")
}

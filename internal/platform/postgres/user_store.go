package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/planovo/planovo-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const upsertUserQuery = `
	INSERT INTO users (id, clerk_id, email, first_name, last_name, image_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (clerk_id) DO UPDATE SET
		email = EXCLUDED.email,
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		image_url = EXCLUDED.image_url,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at
`

// Upsert implements store.UserStore.Upsert.
func (s *PostgresUserStore) Upsert(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("clerk_id", user.ClerkID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	err := s.db.QueryRowContext(
		ctx,
		upsertUserQuery,
		user.ID,
		user.ClerkID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.ImageURL,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Error("failed to upsert user",
			slog.String("error", err.Error()),
			slog.String("clerk_id", user.ClerkID))
		return store.NewStoreError("user", "upsert", "failed to upsert user", MapError(err))
	}

	log.Info("user upserted",
		slog.String("user_id", user.ID.String()),
		slog.String("clerk_id", user.ClerkID))
	return nil
}

// GetByClerkID implements store.UserStore.GetByClerkID.
func (s *PostgresUserStore) GetByClerkID(ctx context.Context, clerkID string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, clerk_id, email, first_name, last_name, image_url, created_at, updated_at
		FROM users
		WHERE clerk_id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, clerkID).Scan(
		&user.ID,
		&user.ClerkID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("user not found", slog.String("clerk_id", clerkID))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by clerk ID",
			slog.String("error", err.Error()),
			slog.String("clerk_id", clerkID))
		return nil, store.NewStoreError("user", "get", "failed to get user", mapped)
	}

	return &user, nil
}

// DeleteByClerkID implements store.UserStore.DeleteByClerkID.
func (s *PostgresUserStore) DeleteByClerkID(ctx context.Context, clerkID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE clerk_id = $1`, clerkID)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("clerk_id", clerkID))
		return store.NewStoreError("user", "delete", "failed to delete user", MapError(err))
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("user to delete not found", slog.String("clerk_id", clerkID))
			return store.ErrUserNotFound
		}
		return err
	}

	log.Info("user deleted", slog.String("clerk_id", clerkID))
	return nil
}

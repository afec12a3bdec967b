package store

import (
	"context"

	"github.com/planovo/planovo-api/internal/domain"
)

// UserStore persists the local mirror of Clerk users. Rows are keyed by the
// Clerk user ID; the internal UUID is assigned on first insert and kept
// across updates.
type UserStore interface {
	// Upsert inserts the user or, when a row with the same Clerk ID exists,
	// updates its profile fields. On return user.ID and the timestamps
	// reflect the stored row.
	// Returns ErrInvalidEntity if the user fails domain validation.
	Upsert(ctx context.Context, user *domain.User) error

	// GetByClerkID returns ErrUserNotFound if no row matches.
	GetByClerkID(ctx context.Context, clerkID string) (*domain.User, error)

	// DeleteByClerkID returns ErrUserNotFound if no row matches.
	DeleteByClerkID(ctx context.Context, clerkID string) error
}

// HealthChecker runs a trivial round-trip query against the database.
type HealthChecker interface {
	// Ping returns the value of SELECT 1.
	Ping(ctx context.Context) (int, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/planovo/planovo-api/internal/store"
)

// UserService keeps the local users table in step with Clerk.
type UserService interface {
	// SyncUser creates the user or refreshes its profile, keyed by Clerk ID.
	SyncUser(ctx context.Context, user *domain.User) error

	// DeleteUser removes the user with the given Clerk ID. Deleting a user
	// that does not exist succeeds so webhook redeliveries are harmless.
	DeleteUser(ctx context.Context, clerkID string) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService. A nil store yields a service
// whose operations fail with ErrUserStoreUnavailable.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}
}

// SyncUser implements UserService.
func (s *UserServiceImpl) SyncUser(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.userStore == nil {
		return ErrUserStoreUnavailable
	}

	if err := s.userStore.Upsert(ctx, user); err != nil {
		log.Error("failed to sync user",
			"error", err,
			"clerk_id", user.ClerkID)
		return fmt.Errorf("failed to sync user: %w", err)
	}

	log.Debug("synced user",
		"user_id", user.ID,
		"clerk_id", user.ClerkID)
	return nil
}

// DeleteUser implements UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, clerkID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.userStore == nil {
		return ErrUserStoreUnavailable
	}
	if clerkID == "" {
		return domain.ErrEmptyClerkID
	}

	err := s.userStore.DeleteByClerkID(ctx, clerkID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug("user to delete was already absent", "clerk_id", clerkID)
		return nil
	case err != nil:
		log.Error("failed to delete user",
			"error", err,
			"clerk_id", clerkID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("deleted user", "clerk_id", clerkID)
	return nil
}

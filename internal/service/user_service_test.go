package service

import (
	"context"
	"errors"
	"testing"

	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByClerkID(ctx context.Context, clerkID string) (*domain.User, error) {
	args := m.Called(ctx, clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) DeleteByClerkID(ctx context.Context, clerkID string) error {
	args := m.Called(ctx, clerkID)
	return args.Error(0)
}

func TestSyncUser(t *testing.T) {
	ctx := context.Background()
	user, err := domain.NewUser("user_2abc", "ada@example.com")
	require.NoError(t, err)

	t.Run("upserts", func(t *testing.T) {
		s := &MockUserStore{}
		s.On("Upsert", ctx, user).Return(nil).Once()

		require.NoError(t, NewUserService(s, nil).SyncUser(ctx, user))
		s.AssertExpectations(t)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		s := &MockUserStore{}
		s.On("Upsert", ctx, user).Return(store.ErrInvalidEntity).Once()

		err := NewUserService(s, nil).SyncUser(ctx, user)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("no store", func(t *testing.T) {
		err := NewUserService(nil, nil).SyncUser(ctx, user)
		assert.ErrorIs(t, err, ErrUserStoreUnavailable)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		s := &MockUserStore{}
		s.On("DeleteByClerkID", ctx, "user_2abc").Return(nil).Once()

		require.NoError(t, NewUserService(s, nil).DeleteUser(ctx, "user_2abc"))
		s.AssertExpectations(t)
	})

	t.Run("missing user is not an error", func(t *testing.T) {
		s := &MockUserStore{}
		s.On("DeleteByClerkID", ctx, "user_gone").Return(store.ErrUserNotFound).Once()

		assert.NoError(t, NewUserService(s, nil).DeleteUser(ctx, "user_gone"))
	})

	t.Run("store failure", func(t *testing.T) {
		s := &MockUserStore{}
		boom := errors.New("connection reset")
		s.On("DeleteByClerkID", ctx, "user_2abc").Return(boom).Once()

		assert.ErrorIs(t, NewUserService(s, nil).DeleteUser(ctx, "user_2abc"), boom)
	})

	t.Run("empty clerk id", func(t *testing.T) {
		s := &MockUserStore{}
		assert.ErrorIs(t, NewUserService(s, nil).DeleteUser(ctx, ""), domain.ErrEmptyClerkID)
		s.AssertNotCalled(t, "DeleteByClerkID", mock.Anything, mock.Anything)
	})
}

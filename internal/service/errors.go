package service

import "errors"

var (
	// ErrUserStoreUnavailable indicates that no database is configured, so
	// user synchronization cannot run. The webhook layer maps it to 503.
	ErrUserStoreUnavailable = errors.New("user store is not available")
)

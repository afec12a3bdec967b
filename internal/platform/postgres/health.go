package postgres

import (
	"context"

	"github.com/planovo/planovo-api/internal/store"
)

// HealthCheck runs SELECT 1 against the pool.
type HealthCheck struct {
	db store.DBTX
}

// NewHealthCheck returns a store.HealthChecker for db.
func NewHealthCheck(db store.DBTX) *HealthCheck {
	return &HealthCheck{db: db}
}

var _ store.HealthChecker = (*HealthCheck)(nil)

// Ping implements store.HealthChecker.
func (h *HealthCheck) Ping(ctx context.Context) (int, error) {
	var result int
	if err := h.db.QueryRowContext(ctx, "SELECT 1 AS test").Scan(&result); err != nil {
		return 0, err
	}
	return result, nil
}
